package core

// RoleAdministrator is the role value that bypasses the predefined-category
// guard when reverting transactions. Identity and role come from the auth
// layer in front of this service.
const RoleAdministrator = "ADMINISTRATOR"
