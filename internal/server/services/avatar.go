package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/edvora/internal/common"
	sc "github.com/dmitrijs2005/edvora/internal/server/config"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/users"
	"github.com/google/uuid"
)

const avatarUploadExpiry = 15 * time.Minute

// Seams over the AWS SDK so tests never reach the network.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// AvatarUpload tells the client where to PUT the image and the URL it will be
// served from afterwards.
type AvatarUpload struct {
	UploadURL string
	AvatarURL string
	User      models.PublicUser
}

// AvatarService hands out presigned S3 upload URLs for profile pictures.
type AvatarService struct {
	config *sc.Config
	users  users.Repository
	now    func() time.Time
}

func NewAvatarService(cfg *sc.Config, repo users.Repository) *AvatarService {
	return &AvatarService{config: cfg, users: repo, now: time.Now}
}

func avatarStorageKey(userID string, d time.Time) string {
	return fmt.Sprintf("avatars/%s/%d/%02d/%02d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AvatarService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// objectURL is the path-style public URL of key in the configured bucket.
func (s *AvatarService) objectURL(key string) string {
	return strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket + "/" + key
}

// PresignUpload issues a presigned PUT for a new avatar image and records its
// final URL on the user's profile.
func (s *AvatarService) PresignUpload(ctx context.Context, userID, contentType string) (*AvatarUpload, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, common.NewValidationError("Avatar must be an image")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := avatarStorageKey(userID, s.now().UTC())

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(avatarUploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	avatarURL := s.objectURL(key)
	user, err := s.users.Update(ctx, userID, models.UserPatch{Avatar: &avatarURL})
	if err != nil {
		return nil, err
	}

	return &AvatarUpload{UploadURL: req.URL, AvatarURL: avatarURL, User: user.Public()}, nil
}
