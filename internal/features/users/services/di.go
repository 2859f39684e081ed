package users_services

import (
	users_repositories "fieldlog/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}
var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var usersSettingsRepository = &users_repositories.UsersSettingsRepository{}

var settingsService = &SettingsService{
	settingsRepository: usersSettingsRepository,
}

var userService = &UserService{
	userRepository:      userRepository,
	secretKeyRepository: secretKeyRepository,
	settingsService:     settingsService,
}

func GetUserService() *UserService {
	return userService
}

func GetSettingsService() *SettingsService {
	return settingsService
}
