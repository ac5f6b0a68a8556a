package notification

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// sender is the part of *messaging.Client the service needs
type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMService handles Firebase Cloud Messaging operations
type FCMService struct {
	client sender
	topic  string
}

// NewFCMService creates a new FCM service instance publishing to topic
func NewFCMService(credentialsPath, topic string) (*FCMService, error) {
	ctx := context.Background()
	opt := option.WithCredentialsFile(credentialsPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &FCMService{client: client, topic: topic}, nil
}

// NotifyVendorRegistered announces a new vendor to the topic subscribers
func (s *FCMService) NotifyVendorRegistered(ctx context.Context, vendorID, businessName string) error {
	message := vendorRegisteredMessage(s.topic, vendorID, businessName)

	response, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}

	log.Printf("[FCM] vendor.registered sent: %s", response)
	return nil
}

func vendorRegisteredMessage(topic, vendorID, businessName string) *messaging.Message {
	title := "New vendor"
	body := fmt.Sprintf("%s just joined the marketplace", businessName)

	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"type":      "vendor.registered",
			"vendor_id": vendorID,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: title,
				Body:  body,
			},
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: "/services",
			},
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
}
