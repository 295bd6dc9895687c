package guard

// Entity описывает минимальный контракт сущности с числовым идентификатором.
// Реализуется всеми доменными моделями, участвующими в проверках владения.
type Entity interface {
	EntityID() int64
}

// FindOwned ищет сущность с заданным id в коллекции, уже ограниченной
// владельцем (результат ListByUserID соответствующего репозитория).
//
// Это единая точка проверки владения: отсутствие id в коллекции владельца
// не различает «не существует» и «принадлежит другому» — обе ситуации
// схлопываются в один отрицательный результат, чтобы не раскрывать
// существование чужих записей.
func FindOwned[E Entity](owned []E, id int64) (E, bool) {
	for _, e := range owned {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// ContainsID возвращает true, если коллекция владельца содержит сущность
// с заданным id. Используется для проверки ссылок на вторичные сущности
// (training_id, plan_id) перед созданием/обновлением.
func ContainsID[E Entity](owned []E, id int64) bool {
	_, ok := FindOwned(owned, id)
	return ok
}
