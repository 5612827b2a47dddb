package overlayhub

import (
	"github.com/ovrlab/overlay-hub/internal/http/handlers/overlay/health"
	"github.com/ovrlab/overlay-hub/internal/storage/repository"
)

// Хранилище обязано подходить обработчику готовности без адаптеров.
var _ health.ReadinessChecker = (*repository.Storage)(nil)
