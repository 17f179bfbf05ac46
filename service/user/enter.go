package user

type ServiceGroup struct {
	AssistantService AssistantService
	HistoryService   HistoryService
	Validator        IValidator
}

func NewServiceGroup() ServiceGroup {
	history := NewHistoryService()
	return ServiceGroup{
		AssistantService: NewAssistantService(history),
		HistoryService:   history,
		Validator:        &Validator{},
	}
}
