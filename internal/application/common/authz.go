// Package common holds ports and checks shared by several use case packages.
package common

import (
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

// PolicyEnforcer answers whether role may perform action on resource.
type PolicyEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

// TextSanitizer strips markup from free text before it is stored.
type TextSanitizer interface {
	StripTags(input string) string
}

// AuthorizeOwnerOrManager lets the owner through, or any role that the
// policy grants manage on resource.
func AuthorizeOwnerOrManager(policy PolicyEnforcer, actor authorization.Identity, ownerID uint, resource string) error {
	if actor.IsOwner(ownerID) {
		return nil
	}

	allowed, err := policy.Enforce(actor.Role.String(), resource, authorization.ActionManage)
	if err != nil {
		return errors.NewInternalError("failed to check permission")
	}
	if !allowed {
		return errors.NewForbiddenError("you do not have permission to modify this " + singular(resource))
	}
	return nil
}

func singular(resource string) string {
	switch resource {
	case authorization.ResourceUsers:
		return "user"
	case authorization.ResourceTickets:
		return "ticket"
	}
	return resource
}
