// Package entity contains the core business objects of the project.
package entity

import "slices"

// Feature is a single grant a user may hold. The set of valid values is closed.
type Feature string

const (
	FeatureCreateUser       Feature = "create:user"
	FeatureReadUser         Feature = "read:user"
	FeatureReadUserSelf     Feature = "read:user:self"
	FeatureUpdateUser       Feature = "update:user"
	FeatureUpdateUserOthers Feature = "update:user:others"

	FeatureCreateSession Feature = "create:session"
	FeatureReadSession   Feature = "read:session"
	FeatureDeleteSession Feature = "delete:session"

	FeatureReadActivationToken Feature = "read:activation_token"

	FeatureCreateMigration Feature = "create:migration"
	FeatureReadMigration   Feature = "read:migration"

	FeatureReadStatus    Feature = "read:status"
	FeatureReadStatusAll Feature = "read:status:all"
)

// String returns the string representation of the Feature.
func (f Feature) String() string {
	return string(f)
}

// IsValid checks if the Feature belongs to the catalog.
func (f Feature) IsValid() bool {
	switch f {
	case FeatureCreateUser, FeatureReadUser, FeatureReadUserSelf, FeatureUpdateUser, FeatureUpdateUserOthers,
		FeatureCreateSession, FeatureReadSession, FeatureDeleteSession,
		FeatureReadActivationToken,
		FeatureCreateMigration, FeatureReadMigration,
		FeatureReadStatus, FeatureReadStatusAll:
		return true
	default:
		return false
	}
}

// Features is a set of grants. Order carries no meaning.
type Features []Feature

// Contains checks if the set holds a specific feature.
func (fs Features) Contains(feature Feature) bool {
	return slices.Contains(fs, feature)
}

// ToStrings converts Features to []string for persistence.
func (fs Features) ToStrings() []string {
	result := make([]string, len(fs))
	for i, f := range fs {
		result[i] = f.String()
	}

	return result
}

// FeaturesFromStrings converts []string to Features, dropping values outside the catalog.
func FeaturesFromStrings(ss []string) Features {
	result := make(Features, 0, len(ss))
	for _, s := range ss {
		feature := Feature(s)
		if feature.IsValid() {
			result = append(result, feature)
		}
	}

	return result
}

// DefaultUserFeatures is assigned to every freshly registered user.
func DefaultUserFeatures() Features {
	return Features{FeatureReadActivationToken}
}

// ActivatedUserFeatures replaces the default set once an activation token is consumed.
func ActivatedUserFeatures() Features {
	return Features{FeatureCreateSession, FeatureReadSession}
}

// AnonymousFeatures is what an unauthenticated caller holds.
func AnonymousFeatures() Features {
	return Features{FeatureReadActivationToken, FeatureCreateSession, FeatureCreateUser}
}
