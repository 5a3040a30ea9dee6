package mapper

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToUserRows(users []domain.User) []dto.UserRow {
	rows := make([]dto.UserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, dto.UserRow{
			ID:        user.ID,
			Username:  user.Username,
			FullName:  user.FullName(),
			CreatedAt: formatTime(user.CreatedAt),
		})
	}
	return rows
}

func ToUserChoices(users []domain.User) []dto.Choice {
	choices := make([]dto.Choice, 0, len(users))
	for _, user := range users {
		choices = append(choices, dto.Choice{ID: user.ID, Name: user.FullName()})
	}
	return choices
}

// ToUserForm prefills the update form. Passwords are never sent back.
func ToUserForm(user domain.User) dto.UserForm {
	return dto.UserForm{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}

func ToRegisterUserInput(form dto.UserForm) domain.RegisterUserInput {
	return domain.RegisterUserInput{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password1,
	}
}

func ToUpdateUserInput(form dto.UserForm) domain.UpdateUserInput {
	return domain.UpdateUserInput{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password1,
	}
}
