package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// nextID allocates a monotonically increasing int64 ID from a counter
// document in a transaction.
func nextID(ctx context.Context, client *firestore.Client, collection, doc string) (int64, error) {
	counterRef := client.Collection(collection).Doc(doc)

	var id int64
	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(counterRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				id = 1
				return tx.Set(counterRef, map[string]interface{}{
					"value": id,
				})
			}
			return goerr.Wrap(err, "failed to get counter")
		}

		currentValue, err := snap.DataAt("value")
		if err != nil {
			return goerr.Wrap(err, "failed to get counter value")
		}

		val, ok := currentValue.(int64)
		if !ok {
			return goerr.New("counter value is not of type int64", goerr.V("value", currentValue))
		}
		id = val + 1
		return tx.Update(counterRef, []firestore.Update{
			{Path: "value", Value: id},
		})
	})

	if err != nil {
		return 0, wrapStoreErr(err, "failed to allocate next ID", goerr.V("collection", collection))
	}

	return id, nil
}
