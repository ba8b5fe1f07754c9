package models

// Administrator — запись из таблицы administrators.
// PasswordHash — bcrypt-хэш, сам пароль нигде не храним.
type Administrator struct {
	ID           int
	Login        string
	PasswordHash string
}
