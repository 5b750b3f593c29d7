// Package kernel provides the shared value objects of the courier service domain.
//
// The package includes:
//   - ID: a store-assigned positive identifier for aggregates
//   - PhoneNumber: a validated contact number shared by users and couriers
//   - Address: city, street and house number embedded by value into users and restaurants
//   - Person: name, surname and phone number embedded by value into users and couriers
//   - TimeOfDay: a wall-clock time used for restaurant opening hours
//   - AccountKind: the tag distinguishing user and courier identities
//
// All value objects are immutable and must be created via their constructors;
// zero values fail Validate.
package kernel
