package hcs

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// BasePath is the path segment every consensus operation lives under.
const BasePath = "hcs"

var (
	createTopic = endpoint.Descriptor{
		Operation: "createTopic",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	getTopicInfo = endpoint.Descriptor{
		Operation: "getTopicInfo",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "{topicId}",
		Shape:     endpoint.ShapeObject,
	}
	updateTopic = endpoint.Descriptor{
		Operation: "updateTopic",
		Method:    http.MethodPut,
		API:       endpoint.Primary,
		Template:  "{topicId}",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	deleteTopic = endpoint.Descriptor{
		Operation: "deleteTopic",
		Method:    http.MethodDelete,
		API:       endpoint.Primary,
		Template:  "{topicId}",
		Shape:     endpoint.ShapeObject,
	}
	submitMessage = endpoint.Descriptor{
		Operation: "submitMessage",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "{topicId}/message",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	getTopic = endpoint.Descriptor{
		Operation: "getTopic",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "topics/{topicId}",
		Shape:     endpoint.ShapeObject,
	}
	listMessages = endpoint.Descriptor{
		Operation: "listMessages",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "topics/{topicId}/messages",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getMessage = endpoint.Descriptor{
		Operation: "getMessage",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "topics/{topicId}/messages/{sequenceNumber}",
		Shape:     endpoint.ShapeObject,
	}
	getMessageByTimestamp = endpoint.Descriptor{
		Operation: "getMessageByTimestamp",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "messages/{timestamp}",
		Shape:     endpoint.ShapeObject,
	}
)

var catalogue = endpoint.Catalogue{
	createTopic,
	getTopicInfo,
	updateTopic,
	deleteTopic,
	submitMessage,
	getTopic,
	listMessages,
	getMessage,
	getMessageByTimestamp,
}

// Endpoints returns a copy of the consensus operation catalogue.
func Endpoints() endpoint.Catalogue {
	return catalogue.Clone()
}

type Client struct {
	group *endpoint.Group
}

// NewClient creates a new Client.
func NewClient(t transport.Transport, logger *zap.Logger) *Client {
	return &Client{group: endpoint.NewGroup(BasePath, t, logger)}
}

// CreateTopic creates a consensus topic.
func (c *Client) CreateTopic(ctx context.Context, request CreateTopicRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, createTopic, endpoint.Call{Body: request})
}

func (c *Client) GetTopicInfo(ctx context.Context, topicID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getTopicInfo, endpoint.Args(topicID))
}

func (c *Client) UpdateTopic(ctx context.Context, topicID string, request UpdateTopicRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, updateTopic, endpoint.Call{
		Args: []string{topicID},
		Body: request,
	})
}

func (c *Client) DeleteTopic(ctx context.Context, topicID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, deleteTopic, endpoint.Args(topicID))
}

// SubmitMessage posts one message to topicID.
func (c *Client) SubmitMessage(
	ctx context.Context,
	topicID string,
	request SubmitMessageRequest,
) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, submitMessage, endpoint.Call{
		Args: []string{topicID},
		Body: request,
	})
}

// GetTopic returns the topic entity as recorded by the mirror API.
func (c *Client) GetTopic(ctx context.Context, topicID string) (Topic, error) {
	return endpoint.Invoke[Topic](ctx, c.group, getTopic, endpoint.Args(topicID))
}

func (c *Client) ListMessages(ctx context.Context, topicID string, query MessagesQuery) (mirror.TopicMessagesPage, error) {
	return endpoint.Invoke[mirror.TopicMessagesPage](ctx, c.group, listMessages, endpoint.Call{
		Args:  []string{topicID},
		Query: query,
	})
}

// GetMessage returns the message with the given sequence number.
func (c *Client) GetMessage(ctx context.Context, topicID string, sequenceNumber string) (mirror.TopicMessage, error) {
	return endpoint.Invoke[mirror.TopicMessage](ctx, c.group, getMessage, endpoint.Args(topicID, sequenceNumber))
}

// GetMessageByTimestamp returns the message reaching consensus at timestamp,
// in seconds.nanoseconds form.
func (c *Client) GetMessageByTimestamp(ctx context.Context, timestamp string) (mirror.TopicMessage, error) {
	return endpoint.Invoke[mirror.TopicMessage](ctx, c.group, getMessageByTimestamp, endpoint.Args(timestamp))
}
