// Command adminhash prints a bcrypt hash for ADMIN_PASSWORD_BCRYPT.
//
//	go run ./cmd/adminhash 'new-password'
//	echo -n 'new-password' | go run ./cmd/adminhash
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Dosada05/sports-calendar/utils"
)

func main() {
	password, err := readPassword()
	if err != nil {
		slog.Error("failed to read password", slog.Any("error", err))
		os.Exit(1)
	}
	if password == "" {
		slog.Error("password must not be empty")
		os.Exit(2)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
