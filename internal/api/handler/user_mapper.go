package handler

import "github.com/accountkit/account-service/internal/core/domain"

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func toListUsersResponse(users []domain.User) listUsersResponse {
	// Non-nil slice so an empty store serializes as "users": [].
	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toUserResponse(u)
	}
	return listUsersResponse{Users: items}
}
