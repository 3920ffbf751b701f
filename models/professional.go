package models

// Professional is a service professional account. Professionals are provisioned
// out of band; only credential verification happens here.
type Professional struct {
	ID           int64  `bson:"professional_id" json:"professional_id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Active       bool   `bson:"is_active" json:"is_active"`
}
