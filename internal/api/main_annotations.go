// @title           cryptolab API
// @version         1.0
// @description     Encrypt, decrypt, generate toy keys and run key exchanges. Operations are recorded in the visitor's session history.
// @BasePath        /api/v1
package api
