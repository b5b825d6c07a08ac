package persist

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// DynamoStore is a gateway over a DynamoDB table with a PK string key and
// a Blob binary attribute. Pointing DYNAMO_ENDPOINT at dynamodb-local
// works for development.
type DynamoStore struct {
	table  string
	client *dynamodb.DynamoDB
}

func NewDynamoStore(table string) (*DynamoStore, error) {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8000"
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &DynamoStore{table: table, client: dynamodb.New(sess)}, nil
}

func (s *DynamoStore) Load(key string) ([]byte, bool, error) {
	res, err := s.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(key)},
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.Item == nil || res.Item["Blob"] == nil {
		return nil, false, nil
	}
	return res.Item["Blob"].B, true, nil
}

func (s *DynamoStore) Save(key string, blob []byte) error {
	_, err := s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":   {S: aws.String(key)},
			"Blob": {B: blob},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
