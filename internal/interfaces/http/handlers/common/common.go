// Package common provides shared HTTP handler utilities.
package common

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

// Actor returns the identity placed by the auth middleware. When it is
// missing a 401 is written and ok is false.
func Actor(c *gin.Context) (authorization.Identity, bool) {
	id, ok := authorization.IdentityFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return authorization.Identity{}, false
	}
	return id, true
}

// NullableUint is a JSON field that tells an absent key (Set false) apart
// from an explicit null (Set true, Value nil).
type NullableUint struct {
	Set   bool
	Value *uint
}

func (n *NullableUint) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
