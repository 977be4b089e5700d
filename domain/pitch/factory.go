package pitch

import (
	"github.com/playitloud/waitlist-api/config/router"
	"github.com/playitloud/waitlist-api/internal/log"
	"gorm.io/gorm"
)

type PitchServiceFactory interface {
	CreateService() PitchService
	CreateController() *router.RESTController
}

type DefaultPitchServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	sender ConfirmationSender
}

func NewPitchServiceFactory(db *gorm.DB, logger *log.Logger, sender ConfirmationSender) PitchServiceFactory {
	return &DefaultPitchServiceFactory{
		db:     db,
		logger: logger,
		sender: sender,
	}
}

func (f *DefaultPitchServiceFactory) CreateService() PitchService {
	repository := NewPitchRepository(f.db)
	return NewPitchService(f.logger, repository, f.sender)
}

func (f *DefaultPitchServiceFactory) CreateController() *router.RESTController {
	return NewPitchController(f.db, f.logger, f.sender)
}
