package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKRedirect(t *testing.T) {
	body, err := json.Marshal(OKRedirect("/panel"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"redirect":"/panel"}`, string(body))
}

func TestOK_OmitsEmptyFields(t *testing.T) {
	body, err := json.Marshal(OK())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))
}

func TestFail(t *testing.T) {
	body, err := json.Marshal(Fail("Неверный email или пароль"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Неверный email или пароль"}`, string(body))
}

func TestOKWithID(t *testing.T) {
	body, err := json.Marshal(OKWithID(42))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"id":42}`, string(body))
}

func TestUnauthorized(t *testing.T) {
	body, err := json.Marshal(Unauthorized())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, string(body))
}
