package workspaces_interfaces

// JoinSecretVerifier checks a plaintext join secret against the stored
// digest for a workspace. Implemented by the join_secrets feature and wired
// through its SetupDependencies to avoid an import cycle.
type JoinSecretVerifier interface {
	VerifyJoinSecret(workspaceID string, secret string) error
}
