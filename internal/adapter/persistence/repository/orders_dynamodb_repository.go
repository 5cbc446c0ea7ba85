package repository

import (
	"context"
	"encoding/json"
	"time"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "os_orders"

// ordersItem holds one operator's full orders collection as an opaque JSON
// payload, matching the syncData contract: the store has no partial-append
// primitive, every sync rewrites the whole collection.
type ordersItem struct {
	Owner     string `dynamodbav:"owner"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrdersDynamoRepository persists per-operator order collections in DynamoDB.
//
// Table requirements:
//   - PK: owner (string)
//
// Writes are last-write-wins by design; two operators never share an owner
// key, and concurrent rewrites for the same owner are an accepted race.

type OrdersDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrdersDynamoRepository)(nil)

func NewOrdersDynamoRepository(ddb *dynamodb.Client) *OrdersDynamoRepository {
	return &OrdersDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrdersDynamoRepository) LoadOrders(ctx context.Context, owner string) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner": &types.AttributeValueMemberS{Value: owner},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.ServiceOrder{}, nil
	}

	var it ordersItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.Payload == "" {
		return []entities.ServiceOrder{}, nil
	}

	var orders []entities.ServiceOrder
	if err := json.Unmarshal([]byte(it.Payload), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrdersDynamoRepository) SyncOrders(ctx context.Context, owner string, orders []entities.ServiceOrder) error {
	if orders == nil {
		orders = []entities.ServiceOrder{}
	}
	payload, err := json.Marshal(orders)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(ordersItem{
		Owner:     owner,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
