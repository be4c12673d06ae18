// Package sdk provides a Go client for the intentd chat gateway.
//
//	client := sdk.New("http://localhost:8080",
//	    sdk.WithAPIKey("secret"),
//	)
//	result, err := client.Chat(ctx, "cuantos camiones hay disponibles")
//	if err != nil {
//	    // transport or server failure; invalid input is NOT an error,
//	    // check result.Valid instead
//	}
//	fmt.Println(result.Label, result.Response)
package sdk
