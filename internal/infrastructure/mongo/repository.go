package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"miniCalc/internal/domain"
	"miniCalc/internal/ports"
)

var _ ports.IOperationRepository = (*OperationRepo)(nil)

// operationDoc — документ в коллекции calculations. Целочисленного серверного id
// у Mongo нет, поэтому в домене остаётся 0; created_at ставится при вставке.
type operationDoc struct {
	A         float64   `bson:"a"`
	B         float64   `bson:"b"`
	Op        string    `bson:"op"`
	Result    float64   `bson:"result"`
	CreatedAt time.Time `bson:"created_at"`
}

// OperationRepo реализует ports.IOperationRepository для MongoDB.
type OperationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewOperationRepo возвращает репозиторий операций.
func NewOperationRepo(client *Client, log *slog.Logger) *OperationRepo {
	return &OperationRepo{client: client, log: log}
}

// SaveOperation сохраняет операцию и возвращает сохранённую запись (ID == 0, см. operationDoc).
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) (*domain.Operation, error) {
	doc := operationDoc{
		A:         op.A,
		B:         op.B,
		Op:        op.Op,
		Result:    op.Result,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.client.Coll().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return nil, err
	}
	return &domain.Operation{
		A:         doc.A,
		B:         doc.B,
		Op:        doc.Op,
		Result:    doc.Result,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// GetHistory возвращает последние операции (новые сначала, не больше limit).
func (r *OperationRepo) GetHistory(ctx context.Context, limit int) ([]domain.Operation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []operationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Operation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Operation{
			A:         d.A,
			B:         d.B,
			Op:        d.Op,
			Result:    d.Result,
			CreatedAt: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.client.Client.Ping(ctx, nil)
}
