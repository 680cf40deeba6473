package service

import (
	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/validators"
)

// ClientServices carries the long-lived dependencies from which a directory
// controller is built each time the UI is mounted.
type ClientServices struct {
	StoreAdapter    adapter.StoreAdapter
	IdentityAdapter adapter.IdentityAdapter
	Validator       validators.Validator

	logger *logger.Logger
}

func NewClientServices(store adapter.StoreAdapter, identity adapter.IdentityAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		StoreAdapter:    store,
		IdentityAdapter: identity,
		Validator:       validators.NewUserValidator(),
		logger:          log,
	}
}

// NewDirectory returns a controller owning a fresh, empty state.
func (s *ClientServices) NewDirectory() DirectoryService {
	return NewDirectoryService(s.StoreAdapter, s.IdentityAdapter, s.Validator, s.logger.GetChildLogger())
}
