package initializers

import (
	"context"

	"talentflow-backend/config"
	s3client "talentflow-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 returns nil when object storage is disabled; callers skip the
// upload surface in that case.
func InitS3(ctx context.Context) s3client.Provider {
	if !*config.Conf.S3.Enabled {
		log.Info("S3 is disabled, file uploads are unavailable")
		return nil
	}
	client, err := s3client.NewClient(config.Conf.S3.Endpoint,
		config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return nil
	}
	if err = client.EnsureBucket(ctx, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket")
		return nil
	}
	log.Info("S3 client initialized")
	return client
}
