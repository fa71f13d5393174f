package services

import (
	portsrepo "github.com/Bugian/unit-conversion-api/internal/core/ports/repositories"
	portssvc "github.com/Bugian/unit-conversion-api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(repos.ConversionRepo),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)
