// Package queries contains the read side: listings and details served straight
// from the store with raw SQL. Queries never modify state and never go through
// the unit of work.
//
// Every query is a constructor-guarded value with a matching handler:
//
//	query, err := NewGetUserOrdersQuery(userID, true)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetUserOrdersQueryHandler(db).Handle(ctx, query)
//
// The SQL sticks to the subset understood by both PostgreSQL and SQLite.
package queries
