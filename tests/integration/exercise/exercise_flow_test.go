//go:build integration
// +build integration

package exercise_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authhandler "gym-planner/internal/handler/auth"
	exercisehandler "gym-planner/internal/handler/exercise"
	workouthandler "gym-planner/internal/handler/workout"
	testcfg "gym-planner/tests/integration/config"
)

func registerUser(t *testing.T, router *gin.Engine, email, username string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":"Password123!","username":%q}`, email, username)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authhandler.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Tokens.AccessToken
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func listPage(t *testing.T, router *gin.Engine, skip, limit int) []exercisehandler.ExerciseResponse {
	t.Helper()

	path := fmt.Sprintf("/api/v1/exercises?skip=%d&limit=%d", skip, limit)
	w := doJSON(router, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page []exercisehandler.ExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	return page
}

// TestExerciseCatalog_Pagination проверяет, что последовательные страницы
// каталога не пересекаются и сохраняют единый возрастающий порядок id.
// Каталог наполняется сидингом миграций и через API не изменяется.
func TestExerciseCatalog_Pagination(t *testing.T) {
	router := testcfg.NewTestRouter(t)

	first := listPage(t, router, 0, 3)
	second := listPage(t, router, 3, 3)
	require.Len(t, first, 3)
	require.Len(t, second, 3)

	// Порядок внутри страниц и между ними строго возрастающий,
	// поэтому страницы заведомо не пересекаются.
	var all []int64
	for _, e := range append(first, second...) {
		all = append(all, e.ID)
	}
	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i], all[i-1], "ids must be strictly ascending: %v", all)
	}

	seen := make(map[int64]bool)
	for _, id := range all {
		require.False(t, seen[id], "page overlap on id=%d", id)
		seen[id] = true
	}

	// Страница за концом каталога пуста, а не ошибочна.
	tail := listPage(t, router, 1000, 3)
	require.Empty(t, tail)
}

// TestExercise_ListSets_TransitiveOwnership проверяет выборку подходов по
// упражнению каталога через цепочку set -> workout_exercise -> workout:
// каждый принципал видит только собственные подходы. Роутов для создания
// позиций и подходов нет, поэтому они наполняются напрямую через SQL.
func TestExercise_ListSets_TransitiveOwnership(t *testing.T) {
	router, db := testcfg.NewTestRouterWithDB(t)

	tokenA := registerUser(t, router, "sets_a@example.com", "sets_a")
	tokenB := registerUser(t, router, "sets_b@example.com", "sets_b")

	// По воркауту на каждого пользователя.
	createWorkout := func(token string) int64 {
		w := doJSON(router, http.MethodPost, "/api/v1/workouts", token, `{"notes":"для подходов"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created workouthandler.WorkoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		return created.ID
	}
	workoutA := createWorkout(tokenA)
	workoutB := createWorkout(tokenB)

	// Позиция с упражнением каталога id=1 в каждом воркауте.
	insertPosition := func(workoutID int64) int64 {
		var weID int64
		err := db.Raw(
			"INSERT INTO workout_exercises (workout_id, exercise_id, position) VALUES (?, 1, 0) RETURNING id",
			workoutID,
		).Scan(&weID).Error
		require.NoError(t, err)
		return weID
	}
	posA := insertPosition(workoutA)
	posB := insertPosition(workoutB)

	insertSet := func(workoutExerciseID int64, reps int, weight float64) {
		err := db.Exec(
			"INSERT INTO sets (workout_exercise_id, reps, weight) VALUES (?, ?, ?)",
			workoutExerciseID, reps, weight,
		).Error
		require.NoError(t, err)
	}
	insertSet(posA, 5, 100)
	insertSet(posA, 8, 80)
	insertSet(posB, 12, 40)

	// Пользователь A видит ровно свои два подхода.
	w := doJSON(router, http.MethodGet, "/api/v1/exercises/1/sets", tokenA, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var setsA []exercisehandler.SetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &setsA))
	require.Len(t, setsA, 2)
	for _, s := range setsA {
		require.Equal(t, posA, s.WorkoutExerciseID)
	}

	// Пользователь B — только свой.
	w = doJSON(router, http.MethodGet, "/api/v1/exercises/1/sets", tokenB, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var setsB []exercisehandler.SetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &setsB))
	require.Len(t, setsB, 1)
	require.Equal(t, posB, setsB[0].WorkoutExerciseID)
	require.Equal(t, 12, setsB[0].Reps)

	// Несуществующее упражнение каталога — 404, а не пустой список.
	w = doJSON(router, http.MethodGet, "/api/v1/exercises/999999/sets", tokenA, "")
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}
