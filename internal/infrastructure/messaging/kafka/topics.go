package kafka

// Topic names for wallet audit events.
const (
	TopicWalletDeposit  = "wallet.deposit"
	TopicWalletWithdraw = "wallet.withdraw"
	TopicWalletRejected = "wallet.rejected"
)

// AllTopics returns every topic this service publishes to.
func AllTopics() []string {
	return []string{TopicWalletDeposit, TopicWalletWithdraw, TopicWalletRejected}
}
