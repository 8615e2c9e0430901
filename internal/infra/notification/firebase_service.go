package notification

import (
	"context"
	"log/slog"

	"athan/config"
	"athan/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// messagingClient is the part of *messaging.Client the push service uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Params defines the dependencies of the Firebase push service
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase Cloud Messaging push service instance
func NewFirebaseService(params Params) (service.PushService, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)

	if fbCfg := params.Config.Firebase; fbCfg != nil {
		if fbCfg.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: fbCfg.ProjectID}
		}
		// Without a file the SDK falls back to application default credentials.
		if fbCfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	params.Logger.Info("[Firebase] Messaging client initialized")

	return newFirebaseService(client), nil
}

func newFirebaseService(client messagingClient) *firebaseService {
	return &firebaseService{
		client: client,
	}
}

// Send delivers one reminder to a single device token and returns the FCM message name.
func (s *firebaseService) Send(ctx context.Context, msg *service.PushMessage) (string, error) {
	if msg == nil || msg.Token == "" {
		return "", errors.New("push message has no token")
	}

	message := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
		},
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"Urgency": "high"},
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) {
			return "", errors.Wrapf(service.ErrRegistrationGone, "failed to send notification: %v", err)
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	return messageID, nil
}
