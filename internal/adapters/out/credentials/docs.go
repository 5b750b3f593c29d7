// Package credentials implements password hashing with bcrypt and bearer
// access tokens as HS256-signed JWTs.
//
// A token names its holder by phone number in the "sub" claim and by account
// kind ("USER" or "COURIER") in the "kind" claim:
//
//	issuer := credentials.NewJWTTokens(secret, 4*time.Hour, clock)
//	token, err := issuer.Issue(kernel.CourierAccount, phone)
//	...
//	subject, err := issuer.Verify(token.Value)
package credentials
