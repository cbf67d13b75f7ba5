package face

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"hrms-backend/internal/config"
)

// MatchThreshold is the minimum similarity (percent) Rekognition must
// report before two faces count as the same person.
const MatchThreshold = 90.0

// Comparer compares a live capture against reference photos stored in
// the S3 bucket.
type Comparer struct {
	client *rekognition.Client
	bucket string
}

func NewComparer(ctx context.Context, cfg *config.Config) (*Comparer, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKey != "" && cfg.AWS.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKey, cfg.AWS.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Comparer{
		client: rekognition.NewFromConfig(awsCfg),
		bucket: cfg.AWS.Bucket,
	}, nil
}

// Compare runs CompareFaces with the stored photo as source and the
// live capture as target. It returns the similarity of the first
// reported match, or 0 with a nil error when no face pair clears the
// threshold.
func (c *Comparer) Compare(ctx context.Context, storedKey string, capture []byte) (float64, error) {
	out, err := c.client.CompareFaces(ctx, &rekognition.CompareFacesInput{
		SourceImage: &rektypes.Image{
			S3Object: &rektypes.S3Object{
				Bucket: aws.String(c.bucket),
				Name:   aws.String(storedKey),
			},
		},
		TargetImage: &rektypes.Image{
			Bytes: capture,
		},
		SimilarityThreshold: aws.Float32(MatchThreshold),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to compare faces against %s: %w", storedKey, err)
	}

	if len(out.FaceMatches) == 0 || out.FaceMatches[0].Similarity == nil {
		return 0, nil
	}
	return float64(*out.FaceMatches[0].Similarity), nil
}
