package user

import (
	"zapshift/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      entities.UserRoleType(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}

	userDB := &UserModifyDB{
		ID:       userModify.ID,
		Email:    userModify.Email,
		Name:     userModify.Name,
		PhotoURL: userModify.PhotoURL,
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}
	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i := range usersDB {
		result[i] = *ToDomain(&usersDB[i])
	}
	return result
}
