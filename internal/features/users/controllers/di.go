package users_controllers

import (
	users_services "fieldlog/internal/features/users/services"
)

var userController = &UserController{
	userService: users_services.GetUserService(),
}

var settingsController = &SettingsController{
	settingsService: users_services.GetSettingsService(),
}

func GetUserController() *UserController {
	return userController
}

func GetSettingsController() *SettingsController {
	return settingsController
}
