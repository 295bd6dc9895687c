//go:build integration
// +build integration

package userexercise_test

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
	traininghandler "gym-planner/internal/handler/training"
	uehandler "gym-planner/internal/handler/userexercise"
	testcfg "gym-planner/tests/integration/config"
)

// registerUser регистрирует пользователя и возвращает его access-токен.
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

// doJSON выполняет запрос с телом JSON и bearer-токеном.
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

// TestUserExercise_CRUD_Flow проверяет сценарий:
// создание привязки -> чтение -> частичное обновление -> отвязка training_id -> удаление.
func TestUserExercise_CRUD_Flow(t *testing.T) {
	router := testcfg.NewTestRouter(t)
	token := registerUser(t, router, "ue_flow@example.com", "ue_flow")

	// Тренировка, к которой будем привязывать запись.
	w := doJSON(router, http.MethodPost, "/api/v1/trainings", token, `{"name":"День ног"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var training traininghandler.TrainingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &training))

	// 1. Создание привязки к упражнению каталога (id=1 из сидинга).
	createBody := fmt.Sprintf(`{"exercise_id":1,"training_id":%d,"notes":"3x8, тяжёлый вес"}`, training.ID)
	w = doJSON(router, http.MethodPost, "/api/v1/user_exercises", token, createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created uehandler.UserExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, int64(1), created.ExerciseID)
	require.NotNil(t, created.TrainingID)
	require.Equal(t, training.ID, *created.TrainingID)

	// 2. Чтение по id.
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/user_exercises/%d", created.ID), token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 3. Частичное обновление: меняем только notes, остальное сохраняется.
	patchBody := fmt.Sprintf(`{"id":%d,"notes":"4x6"}`, created.ID)
	w = doJSON(router, http.MethodPatch, "/api/v1/user_exercises", token, patchBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var patched uehandler.UserExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	require.Equal(t, "4x6", patched.Notes)
	require.Equal(t, created.ExerciseID, patched.ExerciseID)
	require.NotNil(t, patched.TrainingID)
	require.Equal(t, training.ID, *patched.TrainingID)

	// 4. training_id: null — явная отвязка от тренировки.
	clearBody := fmt.Sprintf(`{"id":%d,"training_id":null}`, created.ID)
	w = doJSON(router, http.MethodPatch, "/api/v1/user_exercises", token, clearBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cleared uehandler.UserExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cleared))
	require.Nil(t, cleared.TrainingID)
	require.Equal(t, "4x6", cleared.Notes)

	// 5. Удаление и 404 при повторном чтении.
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/user_exercises/%d", created.ID), token, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/user_exercises/%d", created.ID), token, "")
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

// TestUserExercise_CrossReference_Rules проверяет валидацию ссылок:
// несуществующее упражнение -> 404, чужая тренировка -> 403,
// чужая привязка неотличима от несуществующей -> 404.
func TestUserExercise_CrossReference_Rules(t *testing.T) {
	router := testcfg.NewTestRouter(t)
	tokenA := registerUser(t, router, "ue_owner@example.com", "ue_owner")
	tokenB := registerUser(t, router, "ue_other@example.com", "ue_other")

	// Несуществующий exercise_id -> 404.
	w := doJSON(router, http.MethodPost, "/api/v1/user_exercises", tokenA, `{"exercise_id":999999}`)
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// Тренировка пользователя B.
	w = doJSON(router, http.MethodPost, "/api/v1/trainings", tokenB, `{"name":"Чужая тренировка"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var foreign traininghandler.TrainingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foreign))

	// Ссылка на чужую тренировку -> 403.
	body := fmt.Sprintf(`{"exercise_id":1,"training_id":%d}`, foreign.ID)
	w = doJSON(router, http.MethodPost, "/api/v1/user_exercises", tokenA, body)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Привязка пользователя A недоступна пользователю B как будто её нет.
	w = doJSON(router, http.MethodPost, "/api/v1/user_exercises", tokenA, `{"exercise_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created uehandler.UserExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/user_exercises/%d", created.ID), tokenB, "")
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/user_exercises/%d", created.ID), tokenB, "")
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// exercise_id: null в PATCH запрещён: ссылка обязательная.
	w = doJSON(router, http.MethodPatch, "/api/v1/user_exercises", tokenA,
		fmt.Sprintf(`{"id":%d,"exercise_id":null}`, created.ID))
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
