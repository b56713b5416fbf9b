// Package userrepo implements the user repository and ledger operations over
// PostgreSQL, mapping the user aggregate to its database representation.
package userrepo

import (
	"bookstore/internal/core/domain/model/user"
)

// UserDTO is the database row for a user account. The balance column is the
// ledger: settlements and top-ups mutate it with guarded in-place updates.
type UserDTO struct {
	ID       string `gorm:"primaryKey;size:128"`
	Password string `gorm:"size:128;not null"`
	Balance  int64  `gorm:"not null;default:0"`
	Token    string `gorm:"size:512"`
	Terminal string `gorm:"size:128"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:       aggregate.ID(),
		Password: aggregate.Password(),
		Balance:  aggregate.Balance(),
		Token:    aggregate.Token(),
		Terminal: aggregate.Terminal(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Password, dto.Balance, dto.Token, dto.Terminal)
}
