package initializers

import (
	"talentflow-backend/config"
	"talentflow-backend/lib/smtp"
)

func InitSmtp() smtp.Provider {
	return smtp.NewProvider(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
}
