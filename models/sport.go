package models

// Sport представляет вид спорта мероприятия.
type Sport string

const (
	SportAll        Sport = "all" // only used as a filter value
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportRunning    Sport = "running"
	SportVolleyball Sport = "volleyball"
	SportTennis     Sport = "tennis"
	SportHockey     Sport = "hockey"
	SportSwimming   Sport = "swimming"
	SportSkiing     Sport = "skiing"
	SportOther      Sport = "other" // free-text sport, see Event.CustomSport
)

// Sports lists the selectable sports in display order.
var Sports = []Sport{
	SportFootball,
	SportBasketball,
	SportRunning,
	SportVolleyball,
	SportTennis,
	SportHockey,
	SportSwimming,
	SportSkiing,
	SportOther,
}

var sportNames = map[Sport]string{
	SportAll:        "Все виды",
	SportFootball:   "Футбол",
	SportBasketball: "Баскетбол",
	SportRunning:    "Бег",
	SportVolleyball: "Волейбол",
	SportTennis:     "Теннис",
	SportHockey:     "Хоккей",
	SportSwimming:   "Плавание",
	SportSkiing:     "Лыжные гонки",
	SportOther:      "Другое",
}

func (s Sport) IsValid() bool {
	if s == SportAll {
		return false
	}
	_, ok := sportNames[s]
	return ok
}

// DisplayName returns the ru-RU label, or the raw value for unknown sports.
func (s Sport) DisplayName() string {
	if name, ok := sportNames[s]; ok {
		return name
	}
	return string(s)
}

// EventType отличает домашние мероприятия от выездных.
type EventType string

const (
	EventTypeLocal EventType = "local"
	EventTypeAway  EventType = "away"
)

var eventTypeNames = map[EventType]string{
	EventTypeLocal: "Домашнее",
	EventTypeAway:  "Выездное",
}

func (t EventType) IsValid() bool {
	_, ok := eventTypeNames[t]
	return ok
}

func (t EventType) DisplayName() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// EventLevel is one of eight ranked competition tiers.
type EventLevel string

const (
	LevelMunicipal       EventLevel = "municipal"
	LevelIntermunicipal  EventLevel = "intermunicipal"
	LevelRegional        EventLevel = "regional"
	LevelInterregional   EventLevel = "interregional"
	LevelFederalDistrict EventLevel = "federal_district"
	LevelNational        EventLevel = "national"
	LevelEuropean        EventLevel = "european"
	LevelWorld           EventLevel = "world"
)

// EventLevels is ordered by rank, lowest first.
var EventLevels = []EventLevel{
	LevelMunicipal,
	LevelIntermunicipal,
	LevelRegional,
	LevelInterregional,
	LevelFederalDistrict,
	LevelNational,
	LevelEuropean,
	LevelWorld,
}

var eventLevelNames = map[EventLevel]string{
	LevelMunicipal:       "Муниципальный",
	LevelIntermunicipal:  "Межмуниципальный",
	LevelRegional:        "Региональный",
	LevelInterregional:   "Межрегиональный",
	LevelFederalDistrict: "Федеральный округ",
	LevelNational:        "Всероссийский",
	LevelEuropean:        "Европейский",
	LevelWorld:           "Мировой",
}

// Rank returns 1 for municipal up to 8 for world, 0 for unknown values.
func (l EventLevel) Rank() int {
	for i, level := range EventLevels {
		if level == l {
			return i + 1
		}
	}
	return 0
}

func (l EventLevel) IsValid() bool {
	return l.Rank() > 0
}

func (l EventLevel) DisplayName() string {
	if name, ok := eventLevelNames[l]; ok {
		return name
	}
	return string(l)
}

// DictionaryEntry is a value/label pair used by selection widgets.
type DictionaryEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Rank  int    `json:"rank,omitempty"`
}

// Dictionaries groups every enumerated field of an event.
type Dictionaries struct {
	Sports      []DictionaryEntry `json:"sports"`
	EventTypes  []DictionaryEntry `json:"event_types"`
	EventLevels []DictionaryEntry `json:"event_levels"`
}

func BuildDictionaries() Dictionaries {
	d := Dictionaries{
		Sports:      make([]DictionaryEntry, 0, len(Sports)+1),
		EventTypes:  []DictionaryEntry{},
		EventLevels: make([]DictionaryEntry, 0, len(EventLevels)),
	}
	d.Sports = append(d.Sports, DictionaryEntry{Value: string(SportAll), Label: SportAll.DisplayName()})
	for _, s := range Sports {
		d.Sports = append(d.Sports, DictionaryEntry{Value: string(s), Label: s.DisplayName()})
	}
	for _, t := range []EventType{EventTypeLocal, EventTypeAway} {
		d.EventTypes = append(d.EventTypes, DictionaryEntry{Value: string(t), Label: t.DisplayName()})
	}
	for _, l := range EventLevels {
		d.EventLevels = append(d.EventLevels, DictionaryEntry{Value: string(l), Label: l.DisplayName(), Rank: l.Rank()})
	}
	return d
}
