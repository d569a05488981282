// Package authorization decides what a caller may do and what it may see.
// It performs no I/O and holds no state.
package authorization

import (
	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
)

// Can reports whether caller holds feature. When feature is update:user and a
// target resource is supplied, the blanket grant is ignored: the caller must
// either be the resource or hold update:user:others.
func Can(caller *entity.User, feature entity.Feature, resource *entity.User) (bool, error) {
	if err := validateCaller(caller); err != nil {
		return false, err
	}
	if err := validateFeature(feature); err != nil {
		return false, err
	}

	authorized := caller.Features.Contains(feature)

	if feature == entity.FeatureUpdateUser && resource != nil {
		authorized = isSelf(caller, resource) || caller.Features.Contains(entity.FeatureUpdateUserOthers)
	}

	return authorized, nil
}

// Require is Can turned into an error: Forbidden naming the missing feature, or
// the dedicated "cannot update another user" error for the resource-scoped case.
func Require(caller *entity.User, feature entity.Feature, resource *entity.User) error {
	authorized, err := Can(caller, feature, resource)
	if err != nil {
		return err
	}
	if authorized {
		return nil
	}

	if feature == entity.FeatureUpdateUser && resource != nil {
		return domainerrors.ErrCannotUpdateOtherUser
	}

	return domainerrors.Forbidden(feature.String())
}

func isSelf(caller, resource *entity.User) bool {
	return !caller.IsAnonymous() && caller.ID == resource.ID
}

func validateCaller(caller *entity.User) error {
	if caller == nil || caller.Features == nil {
		return domainerrors.Internal("authorization requires a caller carrying a features set")
	}

	return nil
}

func validateFeature(feature entity.Feature) error {
	if !feature.IsValid() {
		return domainerrors.Internal("authorization requires a known feature, got " + `"` + feature.String() + `"`)
	}

	return nil
}
