package web

// getChatHTML returns the chat page template.
func getChatHTML() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Chat with LLM</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <div class="container">
        <aside class="sidebar">
            <h2>Mode</h2>
            <nav>
                <a href="/chat" class="mode active">LLM Chat</a>
                <a href="/commute" class="mode">Commute Tracker</a>
            </nav>
        </aside>
        <main class="content">
            <h1>Chat with LLM</h1>
            {{if .ErrorText}}<div class="banner error">{{.ErrorText}}</div>{{end}}
            <div class="transcript">
                {{range .Messages}}
                <div class="message {{.Role}}">
                    <span class="role">{{.Role}}</span>
                    <p>{{.Content}}</p>
                </div>
                {{else}}
                <p class="empty">No messages yet. Say something below.</p>
                {{end}}
            </div>
            <form class="chat-form" method="post" action="/chat/send">
                <input type="text" name="message" placeholder="Type your message here..." autofocus autocomplete="off">
                <button type="submit">Send</button>
            </form>
        </main>
    </div>
</body>
</html>`
}

// getCommuteHTML returns the commute tracker page template.
func getCommuteHTML() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Commute Time Tracker</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <div class="container">
        <aside class="sidebar">
            <h2>Mode</h2>
            <nav>
                <a href="/chat" class="mode">LLM Chat</a>
                <a href="/commute" class="mode active">Commute Tracker</a>
            </nav>
        </aside>
        <main class="content">
            <h1>Commute Time Tracker</h1>
            <p class="lead">Log your daily travel times and review accumulated statistics. Entries are stored in a local SQLite database.</p>

            {{if .Saved}}<div class="banner success">Commute entry saved.</div>{{end}}
            {{if .Warning}}<div class="banner warning">{{.Warning}}</div>{{end}}

            <section>
                <h2>Log a trip</h2>
                <form class="commute-form" method="post" action="/commute/add">
                    <label>Date
                        <input type="date" name="travel_date" value="{{.DefaultDate}}" required>
                    </label>
                    <label>Time
                        <input type="time" name="travel_time" value="{{.DefaultTime}}" required>
                    </label>
                    <label>Route
                        <input type="text" name="route_name" placeholder="e.g. Home -> Office">
                    </label>
                    <label>Duration (minutes)
                        <input type="number" name="duration_minutes" min="1" step="1" value="30">
                    </label>
                    <label>Notes
                        <textarea name="notes" rows="3" placeholder="Traffic, delays, anything notable"></textarea>
                    </label>
                    <button type="submit">Save</button>
                </form>
            </section>

            <section>
                <h2>Recent entries</h2>
                {{if .Entries}}
                <table>
                    <tr><th>Date</th><th>Time</th><th>Route</th><th>Minutes</th><th>Notes</th><th>Logged at</th></tr>
                    {{range .Entries}}
                    <tr>
                        <td>{{.TravelDate}}</td>
                        <td>{{.TravelTime}}</td>
                        <td>{{.RouteName}}</td>
                        <td>{{.DurationMinutes}}</td>
                        <td>{{.Notes}}</td>
                        <td>{{.CreatedAt}}</td>
                    </tr>
                    {{end}}
                </table>
                <a class="button" href="/commute/export.csv">Download CSV</a>
                {{else}}
                <p class="empty">No entries yet.</p>
                {{end}}
            </section>

            <section>
                <h2>Per-route totals</h2>
                {{if .Summary}}
                <table>
                    <tr><th>Route</th><th>Trips</th><th>Total minutes</th><th>Avg minutes</th></tr>
                    {{range .Summary}}
                    <tr>
                        <td>{{.RouteName}}</td>
                        <td>{{.Trips}}</td>
                        <td>{{.TotalMinutes}}</td>
                        <td>{{.AvgMinutes}}</td>
                    </tr>
                    {{end}}
                </table>
                {{else}}
                <p class="empty">No data to summarize yet.</p>
                {{end}}
            </section>
        </main>
    </div>
</body>
</html>`
}

// getCSS returns the shared stylesheet.
func getCSS() string {
	return `
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, 'Segoe UI', Roboto, sans-serif;
    background-color: #f4f5f7;
    color: #222;
    line-height: 1.6;
}

.container {
    display: flex;
    min-height: 100vh;
}

.sidebar {
    width: 220px;
    background: #23272f;
    color: #e0e0e0;
    padding: 1.5rem 1rem;
}

.sidebar h2 {
    font-size: 1rem;
    text-transform: uppercase;
    letter-spacing: 0.05em;
    color: #9aa0aa;
    margin-bottom: 1rem;
}

.sidebar .mode {
    display: block;
    color: #e0e0e0;
    text-decoration: none;
    padding: 0.5rem 0.75rem;
    border-radius: 6px;
    margin-bottom: 0.25rem;
}

.sidebar .mode:hover {
    background: #2f343e;
}

.sidebar .mode.active {
    background: #3b82f6;
    color: white;
}

.content {
    flex: 1;
    padding: 2rem;
    max-width: 900px;
}

.content h1 {
    margin-bottom: 1rem;
}

.content h2 {
    margin: 1.5rem 0 0.75rem;
    font-size: 1.1rem;
}

.lead {
    color: #555;
    margin-bottom: 1rem;
}

.banner {
    padding: 0.75rem 1rem;
    border-radius: 6px;
    margin-bottom: 1rem;
}

.banner.success {
    background: #e7f6ec;
    color: #1e7e34;
}

.banner.warning {
    background: #fff6e0;
    color: #9a6b00;
}

.banner.error {
    background: #fdecea;
    color: #b71c1c;
}

.transcript {
    background: white;
    border: 1px solid #ddd;
    border-radius: 8px;
    padding: 1rem;
    margin-bottom: 1rem;
    min-height: 200px;
}

.message {
    margin-bottom: 0.75rem;
}

.message .role {
    display: inline-block;
    font-size: 0.75rem;
    font-weight: bold;
    text-transform: uppercase;
    color: #888;
}

.message.user .role {
    color: #3b82f6;
}

.message.assistant .role {
    color: #10a37f;
}

.chat-form {
    display: flex;
    gap: 0.5rem;
}

.chat-form input {
    flex: 1;
    padding: 0.6rem 0.75rem;
    border: 1px solid #ccc;
    border-radius: 6px;
}

.commute-form {
    background: white;
    border: 1px solid #ddd;
    border-radius: 8px;
    padding: 1rem;
    display: grid;
    gap: 0.75rem;
    max-width: 480px;
}

.commute-form label {
    display: flex;
    flex-direction: column;
    font-size: 0.9rem;
    color: #444;
}

.commute-form input, .commute-form textarea {
    padding: 0.5rem;
    border: 1px solid #ccc;
    border-radius: 6px;
    font: inherit;
}

button, .button {
    background: #3b82f6;
    color: white;
    border: none;
    border-radius: 6px;
    padding: 0.6rem 1.2rem;
    cursor: pointer;
    text-decoration: none;
    display: inline-block;
    font: inherit;
}

button:hover, .button:hover {
    background: #2563eb;
}

table {
    width: 100%;
    border-collapse: collapse;
    background: white;
    border: 1px solid #ddd;
    border-radius: 8px;
}

th, td {
    text-align: left;
    padding: 0.5rem 0.75rem;
    border-bottom: 1px solid #eee;
}

th {
    background: #fafafa;
    font-size: 0.85rem;
}

.empty {
    color: #888;
    font-style: italic;
}
`
}
