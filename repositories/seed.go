package repositories

import (
	"time"

	"github.com/Dosada05/sports-calendar/models"
)

func strPtr(s string) *string { return &s }

// DemoSnapshot returns the demo calendar shown when SEED_DEMO_DATA is enabled.
func DemoSnapshot(now time.Time) Snapshot {
	approved := func(e models.Event) models.Event {
		e.State = models.StateApproved
		e.SubmittedAt = now
		if e.EventType == "" {
			e.EventType = models.EventTypeLocal
		}
		if e.EventLevel == "" {
			e.EventLevel = models.LevelMunicipal
		}
		e.Documents = []models.Attachment{}
		e.Media = []models.Media{}
		return e
	}

	return Snapshot{
		Events: []models.Event{
			approved(models.Event{
				ID:              1,
				EventNumber:     strPtr("MO-2025-001"),
				Title:           `Городской марафон "Весенний забег"`,
				Date:            "2025-11-15",
				Time:            "09:00",
				Location:        "Центральный парк",
				Sport:           models.SportRunning,
				Participants:    124,
				MaxParticipants: 200,
				Status:          models.EventStatusUpcoming,
				Description:     "Массовый забег на 10км среди любителей. Призы победителям в каждой возрастной категории.",
				Organizer:       `Спортивный клуб "Олимп"`,
			}),
			approved(models.Event{
				ID:              6,
				EventNumber:     strPtr("MO-2025-006"),
				Title:           "Народный трейл",
				Date:            "2025-11-04",
				Time:            "10:00",
				Location:        "Лесопарк",
				Sport:           models.SportRunning,
				Participants:    45,
				MaxParticipants: 80,
				Status:          models.EventStatusUpcoming,
				Description:     "Трейловый забег по пересечённой местности на дистанцию 15 км. Подходит для любителей бега на природе.",
				Organizer:       `Беговой клуб "Трейл"`,
			}),
			approved(models.Event{
				ID:              2,
				Title:           "Турнир по футболу 5х5",
				Date:            "2025-11-08",
				Time:            "14:00",
				Location:        `Стадион "Динамо"`,
				Sport:           models.SportFootball,
				EventLevel:      models.LevelRegional,
				Participants:    40,
				MaxParticipants: 48,
				Status:          models.EventStatusUpcoming,
				Description:     "Любительский турнир среди команд города. Формат: групповой этап + плей-офф.",
				Organizer:       "Федерация футбола",
			}),
			approved(models.Event{
				ID:              3,
				Title:           "Баскетбольная лига: Финал",
				Date:            "2025-11-20",
				Time:            "18:00",
				Location:        "Дворец спорта",
				Sport:           models.SportBasketball,
				EventType:       models.EventTypeAway,
				Participants:    89,
				MaxParticipants: 100,
				Status:          models.EventStatusUpcoming,
				Description:     "Финальная игра городской любительской баскетбольной лиги.",
				Organizer:       "Баскетбольная федерация",
			}),
			approved(models.Event{
				ID:              4,
				Title:           "Открытый турнир по волейболу",
				Date:            "2025-10-15",
				Time:            "10:00",
				Location:        `Спорткомплекс "Победа"`,
				Sport:           models.SportVolleyball,
				Participants:    56,
				MaxParticipants: 60,
				Status:          models.EventStatusPast,
				Description:     "Командный турнир среди любителей.",
				Organizer:       "Волейбольный клуб",
				Result:          strPtr(`1 место: Команда "Акула", 2 место: "Динамо", 3 место: "Спартак"`),
			}),
			approved(models.Event{
				ID:              5,
				Title:           `Теннисный турнир "Осень 2025"`,
				Date:            "2025-10-22",
				Time:            "11:00",
				Location:        `Теннисные корты "Звезда"`,
				Sport:           models.SportTennis,
				Participants:    32,
				MaxParticipants: 32,
				Status:          models.EventStatusPast,
				Description:     "Индивидуальный турнир по теннису.",
				Organizer:       `Теннисный клуб "Звезда"`,
				Result:          strPtr("Победитель: Иванов А.П. Финалист: Петров С.М."),
			}),
		},
		Users:         []models.User{},
		Registrations: []models.Registration{},
	}
}
