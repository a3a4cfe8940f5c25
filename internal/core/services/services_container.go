package services

import (
	portsrepo "github.com/bankapp-se/bankapp_backend/internal/core/ports/repositories"
	portssvc "github.com/bankapp-se/bankapp_backend/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the service facades.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		AccountSvc: NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		UserSvc:    NewUserService(repos.UserRepo),
	}
}
