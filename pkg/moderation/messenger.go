package moderation

import "github.com/bwmarrin/discordgo"

// DiscordMessenger implements Messenger over a live discordgo session.
type DiscordMessenger struct {
	session *discordgo.Session
}

// NewDiscordMessenger wraps a discordgo session as a Messenger.
func NewDiscordMessenger(session *discordgo.Session) *DiscordMessenger {
	return &DiscordMessenger{session: session}
}

// PostToChannel sends an embed to a guild channel.
func (m *DiscordMessenger) PostToChannel(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := m.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// SendDirect sends an embed to a user's DM channel, creating it if needed.
func (m *DiscordMessenger) SendDirect(userID string, embed *discordgo.MessageEmbed) error {
	channel, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = m.session.ChannelMessageSendEmbed(channel.ID, embed)
	return err
}
