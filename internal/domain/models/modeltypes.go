package models

// ModelType discriminates which source collection a foreign key points into.
// Membership.MemberKey, Ownership.OwnerKey and relation keys can reference
// persons, orgs or groups; the model type is stored alongside the key so
// readers never have to probe collections.
type ModelType int

const (
	ModelTypePerson ModelType = 0
	ModelTypeGroup  ModelType = 1
	ModelTypeOrg    ModelType = 2
)

// CollectionFor returns the collection name a model type's documents live in.
func CollectionFor(t ModelType) string {
	switch t {
	case ModelTypeGroup:
		return "groups"
	case ModelTypeOrg:
		return "orgs"
	default:
		return "persons"
	}
}
