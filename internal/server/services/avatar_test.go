package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/edvora/internal/common"
	sc "github.com/dmitrijs2005/edvora/internal/server/config"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvatarService(t *testing.T) (*AvatarService, string) {
	t.Helper()
	repo := users.NewMemoryRepository()
	u, err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)

	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
		S3Bucket:       "edvora",
	}
	s := NewAvatarService(cfg, repo)
	s.now = func() time.Time { return time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC) }
	return s, u.ID
}

// stubAWS replaces the SDK seams for the duration of the test.
func stubAWS(t *testing.T, presign func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error)) {
	t.Helper()
	origLoad, origPut := loadDefaultAWSConfig, presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{Region: lo.Region}, nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		assert.Equal(t, avatarUploadExpiry, po.Expires)
		return presign(in)
	}
}

func TestPresignUpload(t *testing.T) {
	s, userID := newAvatarService(t)
	var gotKey string
	stubAWS(t, func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		assert.Equal(t, "edvora", aws.ToString(in.Bucket))
		assert.Equal(t, "image/png", aws.ToString(in.ContentType))
		gotKey = aws.ToString(in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://signed/put"}, nil
	})

	up, err := s.PresignUpload(context.Background(), userID, "image/png")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^avatars/`+userID+`/2025/02/03/[0-9a-f-]{36}$`), gotKey)
	assert.Equal(t, "http://signed/put", up.UploadURL)
	assert.Equal(t, "http://127.0.0.1:9000/edvora/"+gotKey, up.AvatarURL)
	assert.Equal(t, up.AvatarURL, up.User.Avatar)
}

func TestPresignUpload_Errors(t *testing.T) {
	s, userID := newAvatarService(t)

	t.Run("not an image", func(t *testing.T) {
		_, err := s.PresignUpload(context.Background(), userID, "application/pdf")
		assert.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.PresignUpload(context.Background(), "ghost", "image/jpeg")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("presign failure leaves avatar unchanged", func(t *testing.T) {
		stubAWS(t, func(*s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("signer broke")
		})
		_, err := s.PresignUpload(context.Background(), userID, "image/jpeg")
		assert.ErrorContains(t, err, "presign put: signer broke")

		u, err := s.users.GetByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, u.Avatar)
	})

	t.Run("config failure", func(t *testing.T) {
		orig := loadDefaultAWSConfig
		t.Cleanup(func() { loadDefaultAWSConfig = orig })
		loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("no creds")
		}
		_, err := s.PresignUpload(context.Background(), userID, "image/jpeg")
		assert.ErrorContains(t, err, "s3 client: no creds")
	})
}
