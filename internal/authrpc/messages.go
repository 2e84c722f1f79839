package authrpc

import "google.golang.org/protobuf/types/known/structpb"

// StatusOK is the Ping status of a healthy server.
const StatusOK = "OK"

func str(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func boolean(s *structpb.Struct, key string) bool {
	return s.GetFields()[key].GetBoolValue()
}

func object(s *structpb.Struct, key string) *structpb.Struct {
	return s.GetFields()[key].GetStructValue()
}

func stringFields(pairs ...string) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[pairs[i]] = structpb.NewStringValue(pairs[i+1])
	}
	return &structpb.Struct{Fields: fields}
}

// User is the wire form of an account.
type User struct {
	ID            string
	Username      string
	Email         string
	FirstName     string
	LastName      string
	Avatar        string
	Role          string
	EmailVerified bool
	CreatedAt     string
	UpdatedAt     string
}

func (u User) Encode() *structpb.Struct {
	s := stringFields(
		"id", u.ID,
		"username", u.Username,
		"email", u.Email,
		"firstName", u.FirstName,
		"lastName", u.LastName,
		"avatar", u.Avatar,
		"role", u.Role,
		"createdAt", u.CreatedAt,
		"updatedAt", u.UpdatedAt,
	)
	s.Fields["isEmailVerified"] = structpb.NewBoolValue(u.EmailVerified)
	return s
}

func DecodeUser(s *structpb.Struct) User {
	return User{
		ID:            str(s, "id"),
		Username:      str(s, "username"),
		Email:         str(s, "email"),
		FirstName:     str(s, "firstName"),
		LastName:      str(s, "lastName"),
		Avatar:        str(s, "avatar"),
		Role:          str(s, "role"),
		EmailVerified: boolean(s, "isEmailVerified"),
		CreatedAt:     str(s, "createdAt"),
		UpdatedAt:     str(s, "updatedAt"),
	}
}

type LoginRequest struct {
	Username string
	Password string
}

func (r LoginRequest) Encode() *structpb.Struct {
	return stringFields("username", r.Username, "password", r.Password)
}

func DecodeLoginRequest(s *structpb.Struct) LoginRequest {
	return LoginRequest{Username: str(s, "username"), Password: str(s, "password")}
}

type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

func (r RegisterRequest) Encode() *structpb.Struct {
	return stringFields(
		"username", r.Username,
		"email", r.Email,
		"password", r.Password,
		"confirmPassword", r.ConfirmPassword,
		"firstName", r.FirstName,
		"lastName", r.LastName,
	)
}

func DecodeRegisterRequest(s *structpb.Struct) RegisterRequest {
	return RegisterRequest{
		Username:        str(s, "username"),
		Email:           str(s, "email"),
		Password:        str(s, "password"),
		ConfirmPassword: str(s, "confirmPassword"),
		FirstName:       str(s, "firstName"),
		LastName:        str(s, "lastName"),
	}
}

// AuthResponse answers both Login and Register.
type AuthResponse struct {
	User         User
	Token        string
	RefreshToken string
}

func (r AuthResponse) Encode() *structpb.Struct {
	s := stringFields("token", r.Token, "refreshToken", r.RefreshToken)
	s.Fields["user"] = structpb.NewStructValue(r.User.Encode())
	return s
}

func DecodeAuthResponse(s *structpb.Struct) AuthResponse {
	return AuthResponse{
		User:         DecodeUser(object(s, "user")),
		Token:        str(s, "token"),
		RefreshToken: str(s, "refreshToken"),
	}
}

type ForgotPasswordRequest struct {
	Email string
}

func (r ForgotPasswordRequest) Encode() *structpb.Struct {
	return stringFields("email", r.Email)
}

func DecodeForgotPasswordRequest(s *structpb.Struct) ForgotPasswordRequest {
	return ForgotPasswordRequest{Email: str(s, "email")}
}

type ForgotPasswordResponse struct {
	Sent bool
}

func (r ForgotPasswordResponse) Encode() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{"sent": structpb.NewBoolValue(r.Sent)}}
}

func DecodeForgotPasswordResponse(s *structpb.Struct) ForgotPasswordResponse {
	return ForgotPasswordResponse{Sent: boolean(s, "sent")}
}

type PingResponse struct {
	Status string
}

func (r PingResponse) Encode() *structpb.Struct {
	return stringFields("status", r.Status)
}

func DecodePingResponse(s *structpb.Struct) PingResponse {
	return PingResponse{Status: str(s, "status")}
}

// Empty is used for requests and responses that carry no fields.
func Empty() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}
}
