// Project Structure Overview
/*
pulse-backend/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   └── config.go
│   ├── genai/
│   │   ├── client.go
│   │   └── schema.go
│   ├── models/
│   │   ├── common.go
│   │   ├── outcome.go
│   │   ├── review.go
│   │   ├── insight.go
│   │   ├── brand.go
│   │   ├── business.go
│   │   ├── influencer.go
│   │   └── user.go
│   ├── state/
│   │   ├── store.go
│   │   └── seed.go
│   ├── services/
│   │   ├── classifier_service.go
│   │   ├── insight_service.go
│   │   ├── review_service.go
│   │   ├── directory_service.go
│   │   ├── collab_service.go
│   │   ├── studio_service.go
│   │   ├── chat_service.go
│   │   ├── session_service.go
│   │   ├── schemas.go
│   │   └── shaping.go
│   ├── handlers/
│   │   ├── auth.go
│   │   ├── search.go
│   │   ├── review.go
│   │   ├── business.go
│   │   ├── collab.go
│   │   ├── studio.go
│   │   └── chat.go
│   ├── middleware/
│   │   ├── auth.go
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   └── logging.go
│   ├── utils/
│   │   ├── jwt.go
│   │   ├── validator.go
│   │   ├── pagination.go
│   │   └── response.go
│   └── router/
│       └── router.go
├── go.mod
└── go.sum
*/

package pulsebackend

// This file shows the project structure and main entry point
// The actual implementation will be in separate files as shown in the structure above
