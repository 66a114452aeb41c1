package models

import (
	"errors"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func baseEvent() Event {
	return Event{
		ID:              3,
		Title:           "Турнир по футболу 5х5",
		Date:            "2025-11-08",
		Time:            "14:00",
		Location:        "Стадион \"Динамо\"",
		Sport:           SportFootball,
		EventType:       EventTypeLocal,
		EventLevel:      LevelMunicipal,
		Organizer:       "Федерация футбола",
		Participants:    40,
		MaxParticipants: 48,
		Status:          EventStatusUpcoming,
		State:           StateApproved,
		Documents:       []Attachment{{Name: "polozhenie.pdf", URL: "https://storage.example.com/documents/a.pdf"}},
	}
}

func TestEventApplyPatch(t *testing.T) {
	e := baseEvent()

	tests := []struct {
		name    string
		patch   EventPatch
		wantErr error
		check   func(t *testing.T, got Event)
	}{
		{
			name:  "title and location",
			patch: EventPatch{Title: ptr("  Кубок города  "), Location: ptr("Парк")},
			check: func(t *testing.T, got Event) {
				if got.Title != "Кубок города" || got.Location != "Парк" {
					t.Errorf("unexpected fields: %q %q", got.Title, got.Location)
				}
			},
		},
		{
			name:    "empty title rejected",
			patch:   EventPatch{Title: ptr("   ")},
			wantErr: ErrPatchEmptyRequired,
		},
		{
			name:    "bad date rejected",
			patch:   EventPatch{Date: ptr("08.11.2025")},
			wantErr: ErrPatchInvalidField,
		},
		{
			name:    "capacity below participants",
			patch:   EventPatch{MaxParticipants: ptr(10)},
			wantErr: ErrPatchOverCapacity,
		},
		{
			name:    "result on upcoming event",
			patch:   EventPatch{Result: ptr("1 место: Динамо")},
			wantErr: ErrPatchResultNotPast,
		},
		{
			name:  "result together with past status",
			patch: EventPatch{Status: ptr(EventStatusPast), Result: ptr("1 место: Динамо")},
			check: func(t *testing.T, got Event) {
				if got.Result == nil || *got.Result != "1 место: Динамо" {
					t.Errorf("result not applied: %v", got.Result)
				}
			},
		},
		{
			name:    "other sport needs custom name",
			patch:   EventPatch{Sport: ptr(SportOther)},
			wantErr: ErrPatchEmptyRequired,
		},
		{
			name:  "clearing the event number",
			patch: EventPatch{EventNumber: ptr("")},
			check: func(t *testing.T, got Event) {
				if got.EventNumber != nil {
					t.Errorf("expected nil event number, got %q", *got.EventNumber)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ApplyPatch(tt.patch)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ApplyPatch() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyPatch() unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestEventApplyPatchDoesNotMutateOriginal(t *testing.T) {
	e := baseEvent()
	docs := []Attachment{}
	got, err := e.ApplyPatch(EventPatch{Title: ptr("Новое"), Documents: &docs})
	if err != nil {
		t.Fatalf("ApplyPatch() error: %v", err)
	}
	if e.Title != "Турнир по футболу 5х5" {
		t.Errorf("original title changed to %q", e.Title)
	}
	if len(e.Documents) != 1 {
		t.Errorf("original documents changed: %v", e.Documents)
	}
	if len(got.Documents) != 0 {
		t.Errorf("patched documents = %v, want empty", got.Documents)
	}
}

func TestEventApplyPatchKeepsCustomSportSuffix(t *testing.T) {
	e := baseEvent()
	e.Title = "Кубок (Кёрлинг)"
	e.Sport = SportOther
	e.CustomSport = "Кёрлинг"

	tests := []struct {
		name       string
		patch      EventPatch
		wantTitle  string
		wantCustom string
	}{
		{"new custom sport", EventPatch{CustomSport: ptr("Городки")}, "Кубок (Городки)", "Городки"},
		{"switch to a listed sport", EventPatch{Sport: ptr(SportFootball)}, "Кубок", ""},
		{"plain title", EventPatch{Title: ptr("Первенство")}, "Первенство (Кёрлинг)", "Кёрлинг"},
		{"title sent back with suffix", EventPatch{Title: ptr("Первенство (Кёрлинг)")}, "Первенство (Кёрлинг)", "Кёрлинг"},
		{"title with new suffix", EventPatch{Title: ptr("Кубок (Городки)"), CustomSport: ptr("Городки")}, "Кубок (Городки)", "Городки"},
		{"untouched", EventPatch{Location: ptr("Лёд")}, "Кубок (Кёрлинг)", "Кёрлинг"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ApplyPatch(tt.patch)
			if err != nil {
				t.Fatalf("ApplyPatch() error: %v", err)
			}
			if got.Title != tt.wantTitle || got.CustomSport != tt.wantCustom {
				t.Errorf("got title %q custom %q, want %q %q", got.Title, got.CustomSport, tt.wantTitle, tt.wantCustom)
			}
		})
	}

	switched, err := baseEvent().ApplyPatch(EventPatch{Sport: ptr(SportOther), CustomSport: ptr("Лапта")})
	if err != nil {
		t.Fatalf("ApplyPatch() error: %v", err)
	}
	if switched.Title != "Турнир по футболу 5х5 (Лапта)" {
		t.Errorf("switch to other: title = %q", switched.Title)
	}
}

func TestUserApplyPatch(t *testing.T) {
	u := User{Email: "org@example.com", Name: "Иван", Phone: "+7 900", UserType: UserTypeIndividual}

	if _, err := u.ApplyPatch(UserPatch{Email: ptr("other@example.com")}); !errors.Is(err, ErrPatchUnknownUserKey) {
		t.Errorf("expected ErrPatchUnknownUserKey, got %v", err)
	}
	if _, err := u.ApplyPatch(UserPatch{Phone: ptr(" ")}); !errors.Is(err, ErrPatchEmptyRequired) {
		t.Errorf("expected ErrPatchEmptyRequired, got %v", err)
	}
	got, err := u.ApplyPatch(UserPatch{Name: ptr("Иван Петров"), CompanyName: ptr("ООО Спорт")})
	if err != nil {
		t.Fatalf("ApplyPatch() error: %v", err)
	}
	if got.Name != "Иван Петров" {
		t.Errorf("name = %q", got.Name)
	}
	if got.CompanyName != "" {
		t.Errorf("individual must not get a company name, got %q", got.CompanyName)
	}
}
