package grpcclient

import (
	"bytes"
	"context"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/acne-analysis/internal/classifier"
	"github.com/example/acne-analysis/internal/logging"
	proto "github.com/example/acne-analysis/proto"
)

// The model consumes a fixed-size input tensor; images are resized to this
// square before they cross the wire.
const modelInputSize = 224

// DialClassifier returns a ready-to-use gRPC client for the model service.
func DialClassifier(ctx context.Context, addr string, logger *zap.Logger) (classifier.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_classifier", "", err)
		logger.Error("failed to dial classifier", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewAcneClassifierClient(conn)
	return &grpcClassifier{client: client, logger: logger}, conn, nil
}

type grpcClassifier struct {
	client proto.AcneClassifierClient
	logger *zap.Logger
}

func (g *grpcClassifier) Classify(ctx context.Context, userID string, region classifier.Region, imageBytes []byte) (*classifier.Result, error) {
	prepared, err := prepareImage(imageBytes)
	if err != nil {
		return nil, logging.NewOperationError("grpcclient.prepare_image", userID, err)
	}

	resp, err := g.client.Classify(ctx, &proto.ClassifyRequest{
		UserId:     userID,
		FaceRegion: string(region),
		ImageData:  prepared,
	})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.classify", userID, err)
		g.logger.Error("classifier call failed", zap.Error(wrapped),
			zap.String("user_id", userID), zap.String("face_region", string(region)))
		return nil, wrapped
	}
	return &classifier.Result{
		Severity:   classifier.GradeLabel(resp.GetPredictedClass()),
		Confidence: float64(resp.GetConfidence()),
	}, nil
}

// prepareImage decodes the upload and resizes it to the model input size,
// re-encoded as JPEG.
func prepareImage(imageBytes []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}
	resized := imaging.Resize(img, modelInputSize, modelInputSize, imaging.Linear)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
