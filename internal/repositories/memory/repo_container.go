package memory

import (
	portsrepo "github.com/Bugian/unit-conversion-api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires in-process repositories. Data lives only as long as the process.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConversionRepo: NewConversionRepository(),
	}
}
