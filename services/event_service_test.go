package services

import (
	"context"
	"testing"
	"time"

	"chefsystem.pl/models"
	"chefsystem.pl/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Wtorek 10.06.2025", DayLabel(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Niedziela 15.06.2025", DayLabel(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestBuildEventDays(t *testing.T) {
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	days := BuildEventDays(7, from, to)
	require.Len(t, days, 4)

	// syntetyczny dzień produkcji przed dniami kalendarzowymi
	assert.Equal(t, ProductionDayName, days[0].Name)
	assert.Equal(t, models.ProductionDayOrder, days[0].Position)
	assert.Nil(t, days[0].Date)

	assert.Equal(t, "Wtorek 10.06.2025", days[1].Name)
	assert.Equal(t, 0, days[1].Position)
	require.NotNil(t, days[1].Date)
	assert.True(t, days[1].Date.Equal(from))

	assert.Equal(t, "Środa 11.06.2025", days[2].Name)
	assert.Equal(t, 1, days[2].Position)

	assert.Equal(t, "Czwartek 12.06.2025", days[3].Name)
	assert.Equal(t, 2, days[3].Position)

	for _, d := range days {
		assert.Equal(t, uint(7), d.EventID)
	}
}

func TestBuildEventDaysSingleDay(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	days := BuildEventDays(1, day, day)
	require.Len(t, days, 2)
	assert.Equal(t, models.ProductionDayOrder, days[0].Position)
	assert.Equal(t, 0, days[1].Position)
}

func TestCreateEventGeneratesDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventServiceWithDB(db)
	ctx := context.Background()

	event := &models.Event{
		Name:     "Wesele Kowalskich",
		DateFrom: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Adults:   80,
	}
	created, err := svc.CreateEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusDraft, created.Status)
	require.Len(t, created.Days, 4)

	// odczyt głęboki zwraca dni posortowane od dnia produkcji
	loaded, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Days, 4)
	assert.Equal(t, models.ProductionDayOrder, loaded.Days[0].Position)
	assert.Equal(t, ProductionDayName, loaded.Days[0].Name)
	assert.Equal(t, 2, loaded.Days[3].Position)

	days, err := svc.ListEventDays(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, days, 4)

	_, err = svc.ListEventDays(ctx, 9999)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCreateEventValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventServiceWithDB(db)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, &models.Event{Name: ""})
	assert.ErrorIs(t, err, ErrEventNameRequired)

	_, err = svc.CreateEvent(ctx, &models.Event{
		Name:     "Odwrócone daty",
		DateFrom: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrEventInvalidDateRange)
}

func TestUpdateEventKeepsDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventServiceWithDB(db)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, &models.Event{
		Name:     "Konferencja",
		DateFrom: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// wydłużenie zakresu dat nie dokłada dni
	_, err = svc.UpdateEvent(ctx, created.ID, &models.Event{
		Name:     "Konferencja (3 dni)",
		DateFrom: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	loaded, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Konferencja (3 dni)", loaded.Name)
	assert.Len(t, loaded.Days, 3) // Produkcja + 2 dni z pierwotnego zakresu
}

func TestListEventsAutoArchives(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventServiceWithDB(db)
	ctx := context.Background()

	stale := models.Event{
		Name:     "Dawno zakończone",
		DateFrom: time.Now().AddDate(0, 0, -12),
		DateTo:   time.Now().AddDate(0, 0, -10),
		Status:   models.EventStatusActive,
	}
	require.NoError(t, db.Create(&stale).Error)

	fresh := models.Event{
		Name:     "Trwające",
		DateFrom: time.Now(),
		DateTo:   time.Now().AddDate(0, 0, 1),
		Status:   models.EventStatusActive,
	}
	require.NoError(t, db.Create(&fresh).Error)

	result, err := svc.ListEvents(ctx, queryparams.ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Meta.TotalItems)

	var reloaded models.Event
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, models.EventStatusArchived, reloaded.Status)

	reloaded = models.Event{}
	require.NoError(t, db.First(&reloaded, fresh.ID).Error)
	assert.Equal(t, models.EventStatusActive, reloaded.Status)
}

func TestDeleteEventRemovesSubtree(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventServiceWithDB(db)
	ctx := context.Background()

	event, day, section := seedEventDaySection(t, db, 10)
	sd := models.SectionDish{SectionID: section.ID, DishID: 1}
	require.NoError(t, db.Create(&sd).Error)
	task := models.EventTask{DayID: day.ID, Text: "Zamówić namiot", Source: models.TaskSourceCustom}
	require.NoError(t, db.Create(&task).Error)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))

	var count int64
	db.Model(&models.EventDay{}).Where("event_id = ?", event.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.EventTask{}).Where("day_id = ?", day.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.SectionDish{}).Where("section_id = ?", section.ID).Count(&count)
	assert.Zero(t, count)

	_, err := svc.GetEvent(ctx, event.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDuplicateEventCopiesCustomTasksOnly(t *testing.T) {
	db := newTestDB(t)
	eventSvc := NewEventServiceWithDB(db)
	sectionSvc := NewEventSectionServiceWithDB(db)
	taskSvc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	ing := seedIngredient(t, db, "Kapusta")
	recipe := seedRecipe(t, db, "Bigos",
		stepsJSON(t, stepObj{Number: 1, Description: "Posiekaj kapustę"}, stepObj{Number: 2, Description: "Duś dwie godziny"}),
		map[*models.Ingredient]float64{ing: 0.3})
	dish := seedDishWithRecipe(t, db, "Bigos staropolski", recipe)

	source, err := eventSvc.CreateEvent(ctx, &models.Event{
		Name:     "Zjazd rodzinny",
		DateFrom: time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		Adults:   20,
	})
	require.NoError(t, err)
	calendarDay := source.Days[1]

	section, err := sectionSvc.CreateSection(ctx, calendarDay.ID, &models.EventSection{Name: "Obiad"})
	require.NoError(t, err)
	_, err = taskSvc.AttachDishToSection(ctx, section.ID, dish.ID, nil)
	require.NoError(t, err)

	custom, err := taskSvc.CreateTask(ctx, calendarDay.ID, &models.EventTask{Text: "Odebrać zastawę"})
	require.NoError(t, err)
	custom.Done = true
	_, err = taskSvc.UpdateTask(ctx, custom.ID, custom)
	require.NoError(t, err)

	copied, err := eventSvc.DuplicateEvent(ctx, source.ID)
	require.NoError(t, err)

	assert.Equal(t, "Zjazd rodzinny (kopia)", copied.Name)
	assert.Equal(t, models.EventStatusDraft, copied.Status)
	require.Len(t, copied.Days, len(source.Days))

	// sekcje i dania sekcji przeniesione
	copiedDay := copied.Days[1]
	require.Len(t, copiedDay.Sections, 1)
	require.Len(t, copiedDay.Sections[0].Dishes, 1)
	assert.Equal(t, dish.ID, copiedDay.Sections[0].Dishes[0].DishID)

	// tylko zadania użytkownika, z wyzerowaną flagą wykonania
	require.Len(t, copiedDay.Tasks, 1)
	assert.Equal(t, "Odebrać zastawę", copiedDay.Tasks[0].Text)
	assert.Equal(t, models.TaskSourceCustom, copiedDay.Tasks[0].Source)
	assert.False(t, copiedDay.Tasks[0].Done)
}
