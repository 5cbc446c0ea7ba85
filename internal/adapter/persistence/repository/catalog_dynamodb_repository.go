package repository

import (
	"context"
	"encoding/json"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "os_catalog"

type catalogItem struct {
	Owner   string `dynamodbav:"owner"`
	Payload string `dynamodbav:"payload"`
}

// CatalogDynamoRepository reads the operator's clients/vehicles snapshot.
// The registration screens own the write path; this service never writes the
// catalog.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) LoadCatalog(ctx context.Context, owner string) (entities.Catalog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner": &types.AttributeValueMemberS{Value: owner},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Catalog{}, err
	}
	if len(out.Item) == 0 {
		return entities.Catalog{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Catalog{}, err
	}
	if it.Payload == "" {
		return entities.Catalog{}, nil
	}

	var cat entities.Catalog
	if err := json.Unmarshal([]byte(it.Payload), &cat); err != nil {
		return entities.Catalog{}, err
	}
	return cat, nil
}
