package live

import "strconv"

// ClientScript returns the browser side of a session for view: it opens the
// websocket, forwards click and input events fired on elements carrying a
// data-node id, and swaps the body content on every render message.
func ClientScript(view string) string {
	return `
<script>
(function() {
    'use strict';

    var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + location.host + '/ws/' + ` + strconv.Quote(view) + `);
    var script = document.currentScript;

    function send(e) {
        var el = e.target.closest('[data-node]');
        if (!el || ws.readyState !== WebSocket.OPEN) {
            return;
        }
        ws.send(JSON.stringify({
            node: el.getAttribute('data-node'),
            event: e.type,
            value: e.target.value || ''
        }));
    }

    ws.onmessage = function(e) {
        var msg;
        try {
            msg = JSON.parse(e.data);
        } catch (err) {
            return;
        }

        switch (msg.type) {
            case 'render':
                document.body.innerHTML = msg.html;
                document.body.appendChild(script);
                break;

            case 'error':
                console.error('[rangeui]', msg.error);
                break;
        }
    };

    ws.onclose = function() {
        console.log('[rangeui] session closed');
    };

    document.addEventListener('click', send);
    document.addEventListener('input', send);
})();
</script>
`
}
