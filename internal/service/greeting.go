package service

import "context"

// Greeting is the body served on GET /.
const Greeting = "Hi, My name is Sagar Goswami. An ambitious DevOps Engineer with experience in AWS, Docker, CI/CD, Shell Script, Linux, and Git."

// GreetingService defines the use case behind the root route.
type GreetingService interface {
	// Greet returns the greeting text. It never varies between calls.
	Greet(ctx context.Context) string
}

type greetingService struct {
	text string
}

// NewGreetingService constructs a GreetingService serving Greeting.
func NewGreetingService() GreetingService {
	return &greetingService{text: Greeting}
}

func (s *greetingService) Greet(_ context.Context) string {
	return s.text
}
