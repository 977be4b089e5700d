package waitlist

import (
	"github.com/playitloud/waitlist-api/config/router"
	"github.com/playitloud/waitlist-api/internal/identity"
	"github.com/playitloud/waitlist-api/internal/log"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	sender   ConfirmationSender
	provider *identity.Provider
}

func NewWaitlistServiceFactory(db *gorm.DB, logger *log.Logger, sender ConfirmationSender, provider *identity.Provider) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		db:       db,
		logger:   logger,
		sender:   sender,
		provider: provider,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	repository := NewWaitlistRepository(f.db)
	return NewWaitlistService(f.logger, repository, f.sender)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.db, f.logger, f.sender, f.provider)
}
