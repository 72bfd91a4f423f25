package models

// ProficiencyLevel константы уровней владения навыком
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// ConnectionStatus константы статусов заявок на обмен
const (
	ConnectionStatusPending   = "pending"
	ConnectionStatusAccepted  = "accepted"
	ConnectionStatusRejected  = "rejected"
	ConnectionStatusCompleted = "completed"
)

// ValidProficiencyLevels список валидных уровней владения
var ValidProficiencyLevels = map[string]struct{}{
	ProficiencyBeginner:     {},
	ProficiencyIntermediate: {},
	ProficiencyAdvanced:     {},
	ProficiencyExpert:       {},
}

// TeachingProficiencyLevels уровни, с которых пользователь попадает в подбор
// как потенциальный наставник. Новички в выдачу не включаются.
var TeachingProficiencyLevels = []string{
	ProficiencyIntermediate,
	ProficiencyAdvanced,
	ProficiencyExpert,
}

// ValidConnectionStatuses список валидных статусов заявок
var ValidConnectionStatuses = map[string]struct{}{
	ConnectionStatusPending:   {},
	ConnectionStatusAccepted:  {},
	ConnectionStatusRejected:  {},
	ConnectionStatusCompleted: {},
}

// TransitionTargetStatuses статусы, в которые получатель может перевести
// заявку из состояния pending.
var TransitionTargetStatuses = map[string]struct{}{
	ConnectionStatusAccepted: {},
	ConnectionStatusRejected: {},
}
