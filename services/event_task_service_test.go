package services

import (
	"context"
	"testing"

	"chefsystem.pl/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func dayTasks(t *testing.T, db *gorm.DB, dayID uint) []models.EventTask {
	t.Helper()
	var tasks []models.EventTask
	require.NoError(t, db.Where("day_id = ?", dayID).Order("kolejnosc asc").Find(&tasks).Error)
	return tasks
}

func TestAttachDishGeneratesRecipeTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	ing := seedIngredient(t, db, "Ziemniaki")
	recipe := seedRecipe(t, db, "Bigos", stepsJSON(t,
		stepObj{Number: 1, Description: "Umyj warzywa"},
		stepObj{Number: 2, Description: "Pokrój kapustę"},
		stepObj{Number: 3, Description: "Duś dwie godziny"},
	), map[*models.Ingredient]float64{ing: 0.2})
	dish := seedDishWithRecipe(t, db, "Bigos z pieczywem", recipe)
	_, day, section := seedEventDaySection(t, db, 10)

	sd, err := svc.AttachDishToSection(ctx, section.ID, dish.ID, intPtr(15))
	require.NoError(t, err)
	require.NotZero(t, sd.ID)
	require.NotNil(t, sd.Portions)
	assert.Equal(t, 15, *sd.Portions)

	tasks := dayTasks(t, db, day.ID)
	require.Len(t, tasks, 3)

	assert.Equal(t, "Umyj warzywa [Bigos]", tasks[0].Text)
	assert.Equal(t, "Pokrój kapustę [Bigos]", tasks[1].Text)
	assert.Equal(t, "Duś dwie godziny [Bigos]", tasks[2].Text)

	for i, task := range tasks {
		assert.Equal(t, models.TaskSourceRecipe, task.Source)
		assert.Equal(t, i+1, task.Position) // pozycje 1-kowe
		assert.False(t, task.Done)
		require.NotNil(t, task.SectionDishID)
		assert.Equal(t, sd.ID, *task.SectionDishID)
		require.NotNil(t, task.RecipeID)
		assert.Equal(t, recipe.ID, *task.RecipeID)
	}
}

func TestAttachDishPlainStringSteps(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	ing := seedIngredient(t, db, "Marchew")
	recipe := seedRecipe(t, db, "Surówka", stepsJSON(t, "Zetrzyj marchew", "Dopraw"),
		map[*models.Ingredient]float64{ing: 0.1})
	dish := seedDishWithRecipe(t, db, "Surówka z marchwi", recipe)
	_, day, section := seedEventDaySection(t, db, 10)

	_, err := svc.AttachDishToSection(ctx, section.ID, dish.ID, nil)
	require.NoError(t, err)

	tasks := dayTasks(t, db, day.ID)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Zetrzyj marchew [Surówka]", tasks[0].Text)
}

func TestAttachDishRecipeWithoutSteps(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	cases := map[string]datatypes.JSON{
		"brak kroków":       nil,
		"pusta tablica":     datatypes.JSON(`[]`),
		"null":              datatypes.JSON(`null`),
		"uszkodzony JSON":   datatypes.JSON(`{"oops":`),
		"obiekt, nie lista": datatypes.JSON(`{"krok":1}`),
		"string, nie lista": datatypes.JSON(`"ugotuj"`),
	}

	for name, steps := range cases {
		t.Run(name, func(t *testing.T) {
			recipe := seedRecipe(t, db, "Receptura "+name, steps, nil)
			dish := seedDishWithRecipe(t, db, "Danie "+name, recipe)
			_, day, section := seedEventDaySection(t, db, 5)

			// brak kroków nie jest błędem operacji, danie i tak trafia do sekcji
			sd, err := svc.AttachDishToSection(ctx, section.ID, dish.ID, nil)
			require.NoError(t, err)
			require.NotZero(t, sd.ID)
			assert.Empty(t, dayTasks(t, db, day.ID))
		})
	}
}

func TestDetachDishDeletesOnlyOwnTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	ing := seedIngredient(t, db, "Cebula")
	recipe := seedRecipe(t, db, "Zupa cebulowa", stepsJSON(t,
		stepObj{Number: 1, Description: "Podsmaż cebulę"},
		stepObj{Number: 2, Description: "Zalej bulionem"},
	), map[*models.Ingredient]float64{ing: 0.15})
	dish := seedDishWithRecipe(t, db, "Zupa dnia", recipe)
	_, day, section := seedEventDaySection(t, db, 10)

	// to samo danie dwa razy w sekcji — dwa niezależne komplety zadań
	first, err := svc.AttachDishToSection(ctx, section.ID, dish.ID, nil)
	require.NoError(t, err)
	second, err := svc.AttachDishToSection(ctx, section.ID, dish.ID, nil)
	require.NoError(t, err)
	require.Len(t, dayTasks(t, db, day.ID), 4)

	require.NoError(t, svc.DetachDishFromSection(ctx, first.ID))

	remaining := dayTasks(t, db, day.ID)
	require.Len(t, remaining, 2)
	for _, task := range remaining {
		require.NotNil(t, task.SectionDishID)
		assert.Equal(t, second.ID, *task.SectionDishID)
	}

	var sdCount int64
	db.Model(&models.SectionDish{}).Where("section_id = ?", section.ID).Count(&sdCount)
	assert.EqualValues(t, 1, sdCount)
}

func TestCreateTaskForcesCustomSource(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	_, day, _ := seedEventDaySection(t, db, 10)

	task, err := svc.CreateTask(ctx, day.ID, &models.EventTask{
		Text:          "Kupić lód",
		Source:        models.TaskSourceRecipe, // próba podszycia się pod zadanie recepturowe
		RecipeID:      uintPtr(99),
		SectionDishID: uintPtr(99),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskSourceCustom, task.Source)
	assert.Nil(t, task.RecipeID)
	assert.Nil(t, task.SectionDishID)

	_, err = svc.CreateTask(ctx, day.ID, &models.EventTask{Text: ""})
	assert.ErrorIs(t, err, ErrTaskTextRequired)

	_, err = svc.CreateTask(ctx, 9999, &models.EventTask{Text: "Na nieistniejący dzień"})
	assert.ErrorIs(t, err, ErrTaskDayNotFound)
}

func TestUpdateTaskMoveAndImmutability(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	event, day, _ := seedEventDaySection(t, db, 10)
	otherDay := models.EventDay{EventID: event.ID, Name: "Dzień 2", Position: 1}
	require.NoError(t, db.Create(&otherDay).Error)

	task, err := svc.CreateTask(ctx, day.ID, &models.EventTask{Text: "Przygotować salę"})
	require.NoError(t, err)

	moved, err := svc.UpdateTask(ctx, task.ID, &models.EventTask{
		DayID: otherDay.ID,
		Text:  "Przygotować salę i nagłośnienie",
		Done:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, otherDay.ID, moved.DayID)
	assert.Equal(t, "Przygotować salę i nagłośnienie", moved.Text)
	assert.True(t, moved.Done)
	assert.Equal(t, models.TaskSourceCustom, moved.Source)

	_, err = svc.UpdateTask(ctx, task.ID, &models.EventTask{DayID: 9999, Text: "x"})
	assert.ErrorIs(t, err, ErrTaskDayNotFound)
}

func TestDeleteTaskRejectsRecipeTasks(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventTaskServiceWithDB(db)
	ctx := context.Background()

	ing := seedIngredient(t, db, "Por")
	recipe := seedRecipe(t, db, "Bulion", stepsJSON(t, stepObj{Number: 1, Description: "Gotuj na wolnym ogniu"}),
		map[*models.Ingredient]float64{ing: 0.05})
	dish := seedDishWithRecipe(t, db, "Rosół", recipe)
	_, day, section := seedEventDaySection(t, db, 10)

	_, err := svc.AttachDishToSection(ctx, section.ID, dish.ID, nil)
	require.NoError(t, err)
	recipeTask := dayTasks(t, db, day.ID)[0]

	err = svc.DeleteTask(ctx, recipeTask.ID)
	assert.ErrorIs(t, err, ErrTaskNotDeletable)
	require.Len(t, dayTasks(t, db, day.ID), 1) // zadanie zostało

	custom, err := svc.CreateTask(ctx, day.ID, &models.EventTask{Text: "Spisać alergie gości"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, custom.ID))

	err = svc.DeleteTask(ctx, custom.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
