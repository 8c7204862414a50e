package db

import (
	"fmt"

	dbmodels "talentflow-backend/models/db"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (*gorm.DB, error) {
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
	}

	if migrate {
		if err = Migrate(db); err != nil {
			return nil, err
		}
		log.Info("database migration finished")
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Job{},
		&dbmodels.Candidate{},
		&dbmodels.CandidateNote{},
		&dbmodels.StageHistoryEvent{},
		&dbmodels.Assessment{},
		&dbmodels.AssessmentResponse{},
		&dbmodels.FileRecord{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate the schema")
	}
	return nil
}
