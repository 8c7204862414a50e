package initializers

import (
	"context"

	"talentflow-backend/config"
	"talentflow-backend/fiberlog"
	"talentflow-backend/lib/assessment"
	"talentflow-backend/lib/candidate"
	candidatestore "talentflow-backend/lib/candidate/store"
	xlsexport "talentflow-backend/lib/export/xls"
	filestorage "talentflow-backend/lib/file-storage"
	"talentflow-backend/lib/job"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/lib/smtp"

	"gorm.io/gorm"
)

// Services holds every wired handler; main passes them to the route
// registrars. FileStorage is nil when S3 is disabled.
type Services struct {
	DB          *gorm.DB
	Jobs        job.Provider
	Candidates  candidate.Provider
	Assessments assessment.Provider
	Export      xlsexport.Provider
	FileStorage filestorage.Provider
}

func InitAllServices(ctx context.Context) (*Services, *fiberlog.Config) {
	loggerConfig := InitLogger()
	config.InitConfig()
	conn := InitDBConnection()
	var mailer smtp.Provider
	if *config.Conf.Smtp.NotifyOnStageChange {
		mailer = InitSmtp()
	}

	services := Services{
		DB:          conn,
		Jobs:        job.NewInstance(conn),
		Candidates:  candidate.NewHandler(conn, mailer),
		Assessments: assessment.NewInstance(conn),
		Export:      xlsexport.NewHandler(candidatestore.NewInstance(conn), jobstore.NewInstance(conn)),
	}

	if s3 := InitS3(ctx); s3 != nil {
		services.FileStorage = filestorage.NewHandler(conn, s3, config.Conf.S3.BucketName)
	}
	return &services, loggerConfig
}
