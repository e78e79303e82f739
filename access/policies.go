package access

import "logo-lms/models"

var (
	// Gates run before the target is loaded.
	OwnerGate   = Policy{RequireAuth(), RequireRole(models.RoleOwner)}
	StudentGate = Policy{RequireAuth(), RequireRole(models.RoleStudent)}

	ProfilePolicy = Policy{
		RequireAuth(),
		RequireOwnership(),
	}

	CoursePolicy = Policy{
		RequireAuth(),
		RequireRole(models.RoleOwner),
		Only(RequireOwnership(), ActionUpdate, ActionDelete),
	}

	// Lesson creation is checked against the parent course.
	LessonPolicy = Policy{
		RequireAuth(),
		RequireRole(models.RoleOwner),
		Only(RequireOwnership(), ActionCreate, ActionUpdate, ActionDelete),
	}

	FavoritePolicy = Policy{
		RequireAuth(),
		RequireRole(models.RoleStudent),
		Only(RequireOwnership(), ActionDelete),
	}

	PurchasePolicy = Policy{
		RequireAuth(),
		RequireRole(models.RoleStudent),
	}

	ReviewPolicy = Policy{
		RequireAuth(),
		RequireRole(models.RoleStudent),
		Only(RequireOwnership(), ActionUpdate, ActionDelete),
	}
)
