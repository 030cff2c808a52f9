package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactPayload(name string) gin.H {
	return gin.H{
		"name":         name,
		"last_name":    "Lovelace",
		"email":        name + "@x.com",
		"phone_number": "+4479460000",
		"birth_date":   "1990-12-10",
		"notes":        "mathematician",
	}
}

func (e *testEnv) createContact(t *testing.T, bearer string, payload gin.H) map[string]any {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/contacts", bearer, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeJSON(t, w)
}

func TestContactCRUD(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	created := env.createContact(t, pair.AccessToken, contactPayload("ada"))
	assert.EqualValues(t, 1, created["id"])
	assert.Equal(t, "1990-12-10", created["birth_date"])

	w := env.do(t, http.MethodGet, "/api/contacts/1", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada@x.com", decodeJSON(t, w)["email"])

	update := contactPayload("ada")
	update["notes"] = "first programmer"
	w = env.do(t, http.MethodPut, "/api/contacts/1", pair.AccessToken, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "first programmer", decodeJSON(t, w)["notes"])

	w = env.do(t, http.MethodDelete, "/api/contacts/1", pair.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/contacts/1", pair.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contact not found", decodeJSON(t, w)["detail"])
}

func TestContactRequiresAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/contacts", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodGet, "/api/contacts", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Could not validate credentials", decodeJSON(t, w)["detail"])
}

func TestContactForeignOwnerIsAMiss(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	ada := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")
	eve := env.signupAndConfirm(t, "eve", "eve@x.com", "secret1")

	env.createContact(t, ada.AccessToken, contactPayload("ada"))

	// Eve holds a valid id that belongs to Ada: 404 on every verb.
	w := env.do(t, http.MethodGet, "/api/contacts/1", eve.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodPut, "/api/contacts/1", eve.AccessToken, contactPayload("eve"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodDelete, "/api/contacts/1", eve.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// And Eve's listing stays empty.
	w = env.do(t, http.MethodGet, "/api/contacts", eve.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestContactListQuery(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	for i := 0; i < 12; i++ {
		p := contactPayload(fmt.Sprintf("c%02d", i))
		env.createContact(t, pair.AccessToken, p)
	}

	decodeList := func(w string) []map[string]any {
		var out []map[string]any
		require.NoError(t, json.Unmarshal([]byte(w), &out))
		return out
	}

	// Limit above the page size is clamped to 10.
	w := env.do(t, http.MethodGet, "/api/contacts?limit=100", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(w.Body.String()), PageSize)

	w = env.do(t, http.MethodGet, "/api/contacts?limit=10&offset=10", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(w.Body.String()), 2)

	w = env.do(t, http.MethodGet, "/api/contacts?offset=-1", pair.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid offset", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodGet, "/api/contacts?name=c03", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeList(w.Body.String())
	require.Len(t, got, 1)
	assert.Equal(t, "c03@x.com", got[0]["email"])
}

func TestContactListUpcomingBirthdayQuery(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	soon := contactPayload("soon")
	soon["birth_date"] = time.Now().AddDate(-30, 0, 3).Format("2006-01-02")
	env.createContact(t, pair.AccessToken, soon)

	far := contactPayload("far")
	far["birth_date"] = time.Now().AddDate(-30, 0, 60).Format("2006-01-02")
	env.createContact(t, pair.AccessToken, far)

	w := env.do(t, http.MethodGet, "/api/contacts?find_bd=true", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "soon", got[0]["name"])
}

func TestContactValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	bad := contactPayload("ada")
	bad["birth_date"] = "10-12-1990"
	w := env.do(t, http.MethodPost, "/api/contacts", pair.AccessToken, bad)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs, ok := decodeJSON(t, w)["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "birth_date")

	w = env.do(t, http.MethodGet, "/api/contacts/0", pair.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid contact id", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodGet, "/api/contacts/abc", pair.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
