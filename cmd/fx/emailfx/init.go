package emailfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"minishop/internal/api/controllers"
	"minishop/internal/infra"
	"minishop/internal/models/db_models"
	"minishop/internal/repositories"
	"minishop/internal/services"
	"minishop/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideClock,
		provideMailSender,
		provideEmailRepo,
		provideTemplateRepo,
		provideEmailService,
		controllers.NewEmailsController,
	),
	fx.Invoke(migrate),
)

func migrate(db *gorm.DB) {
	infra.AutoMigrate(db,
		&db_models.Email{},
		&db_models.EmailTemplate{})
}

func provideClock() utils.Clock {
	return utils.RealClock{}
}

func provideMailSender() services.MailSenderInterface {
	return services.NewSMTPMailSender(services.SMTPConfig{
		Host:       utils.EnvOr("SMTP_HOST", "localhost"),
		Port:       utils.EnvIntOr("SMTP_PORT", 587),
		Username:   utils.EnvOr("SMTP_USERNAME", ""),
		Password:   utils.EnvOr("SMTP_PASSWORD", ""),
		From:       utils.EnvOr("SMTP_FROM", "no-reply@minishop.test"),
		FromName:   utils.EnvOr("SMTP_FROM_NAME", "MiniShop"),
		UseSSL:     utils.EnvBool("SMTP_USE_SSL"),
		RequireTLS: utils.EnvBool("SMTP_REQUIRE_TLS"),
	})
}

func provideEmailRepo(db *gorm.DB) repositories.EmailRepositoryInterface {
	return repositories.NewEmailRepository(db)
}

func provideTemplateRepo(db *gorm.DB) repositories.EmailTemplateRepositoryInterface {
	return repositories.NewEmailTemplateRepository(db)
}

func provideEmailService(
	emailRepo repositories.EmailRepositoryInterface,
	templateRepo repositories.EmailTemplateRepositoryInterface,
	sender services.MailSenderInterface,
	clock utils.Clock,
) services.EmailServiceInterface {
	return services.NewEmailService(emailRepo, templateRepo, sender, clock)
}
